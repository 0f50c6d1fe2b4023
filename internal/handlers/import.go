package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/neuroscope/core/internal/layers"
	"github.com/neuroscope/core/internal/metrics"
	"github.com/neuroscope/core/internal/models"
	"github.com/neuroscope/core/internal/parser"
	"github.com/neuroscope/core/internal/weights"
)

// ImportConfig carries the service-level knobs for the import endpoint.
type ImportConfig struct {
	MaxUploadBytes int64
	Metrics        *metrics.Registry
}

var weightFileExtensions = map[string]bool{
	".safetensors": true,
	".json":        true,
}

// ImportHandler accepts a multipart upload of a weights file and a structure
// descriptor, converts them into the network graph and returns it as JSON.
// Both uploads are materialized to temporary files, which are removed on
// every exit path.
func ImportHandler(cfg ImportConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		if cfg.MaxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes)
		}

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid multipart body: "+err.Error())
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		weightsFile, weightsHeader, err := r.FormFile("weights_file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing weights_file upload")
			return
		}
		defer weightsFile.Close()

		infoFile, infoHeader, err := r.FormFile("info_file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing info_file upload")
			return
		}
		defer infoFile.Close()

		if ext := filepath.Ext(weightsHeader.Filename); !weightFileExtensions[ext] {
			writeError(w, http.StatusBadRequest,
				"Invalid weights file type for "+weightsHeader.Filename+". Only .safetensors and .json files are supported.")
			return
		}
		if ext := filepath.Ext(infoHeader.Filename); ext != ".json" {
			writeError(w, http.StatusBadRequest,
				"Invalid info file type for "+infoHeader.Filename+". Only .json files are supported.")
			return
		}

		weightsPath, err := saveUpload(weightsFile, "neuroscope-weights-*")
		if err != nil {
			log.Printf("[%s] failed to store weights upload: %v", requestID, err)
			writeError(w, http.StatusInternalServerError, "Failed to store uploaded files")
			return
		}
		defer os.Remove(weightsPath)

		infoPath, err := saveUpload(infoFile, "neuroscope-info-*")
		if err != nil {
			log.Printf("[%s] failed to store info upload: %v", requestID, err)
			writeError(w, http.StatusInternalServerError, "Failed to store uploaded files")
			return
		}
		defer os.Remove(infoPath)

		started := time.Now()

		infoData, err := os.ReadFile(infoPath)
		if err != nil {
			log.Printf("[%s] failed to read info temp file: %v", requestID, err)
			writeError(w, http.StatusInternalServerError, "Failed to read uploaded files")
			return
		}

		desc, err := parser.ParseDescriptor(infoData)
		if err != nil {
			recordConversion(cfg.Metrics, "malformed", started, nil)
			writeError(w, http.StatusBadRequest, "Invalid model info file: "+err.Error())
			return
		}

		weightMap, err := weights.Load(weightsPath)
		if err != nil {
			recordConversion(cfg.Metrics, "malformed", started, nil)
			writeError(w, http.StatusBadRequest, "Invalid weights file: "+err.Error())
			return
		}

		network, err := parser.BuildGraph(desc, weightMap)
		if err != nil {
			if errors.Is(err, layers.ErrUnsupportedLayer) {
				recordConversion(cfg.Metrics, "unsupported", started, nil)
				writeError(w, http.StatusUnprocessableEntity, "Failed to convert model: "+err.Error())
				return
			}
			log.Printf("[%s] conversion failed: %v", requestID, err)
			recordConversion(cfg.Metrics, "error", started, nil)
			writeError(w, http.StatusInternalServerError, "Failed to convert model: "+err.Error())
			return
		}

		if err := network.Validate(); err != nil {
			log.Printf("[%s] converted network failed validation: %v", requestID, err)
			recordConversion(cfg.Metrics, "error", started, nil)
			writeError(w, http.StatusInternalServerError, "Converted network failed validation")
			return
		}

		recordConversion(cfg.Metrics, "success", started, network)

		w.Header().Set("Content-Type", "application/json")

		encoder := json.NewEncoder(w)
		if r.URL.Query().Get("pretty") == "true" {
			encoder.SetIndent("", "  ")
		}

		if err := encoder.Encode(network); err != nil {
			log.Printf("[%s] error encoding response: %v", requestID, err)
		}
	}
}

// saveUpload materializes an uploaded file to temporary storage and returns
// its path. The caller owns removal.
func saveUpload(src multipart.File, pattern string) (string, error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func recordConversion(reg *metrics.Registry, status string, started time.Time, network *models.NeuroscopeNetwork) {
	if reg == nil {
		return
	}
	nodes, connections := 0, 0
	if network != nil {
		nodes = len(network.Nodes)
		connections = len(network.Connections)
	}
	reg.RecordConversion("descriptor", status, time.Since(started), nodes, connections)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
