package weights

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/neuroscope/core/internal/tensor"
)

// SafeTensors layout:
// [8 bytes: header size (uint64 LE)]
// [header: JSON map of name -> {dtype, shape, data_offsets}]
// [raw little-endian tensor data]

const maxHeaderSize = 100 * 1024 * 1024

type safeTensorInfo struct {
	DType       string   `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

func loadSafeTensors(r io.Reader) (Map, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("failed to read safetensors header size: %w", err)
	}
	if headerSize == 0 || headerSize > maxHeaderSize {
		return nil, fmt.Errorf("invalid safetensors header size: %d", headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read safetensors header: %w", err)
	}

	var rawHeader map[string]json.RawMessage
	if err := json.Unmarshal(headerBytes, &rawHeader); err != nil {
		return nil, fmt.Errorf("failed to parse safetensors header: %w", err)
	}

	infos := make(map[string]safeTensorInfo, len(rawHeader))
	for name, raw := range rawHeader {
		if name == "__metadata__" {
			continue
		}
		var info safeTensorInfo
		if err := json.Unmarshal(raw, &info); err != nil {
			return nil, fmt.Errorf("failed to parse tensor entry %q: %w", name, err)
		}
		infos[name] = info
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read safetensors payload: %w", err)
	}

	weightMap := make(Map, len(infos))
	for name, info := range infos {
		t, err := decodeSection(name, info, payload)
		if err != nil {
			return nil, err
		}
		weightMap[name] = t
	}
	return weightMap, nil
}

func decodeSection(name string, info safeTensorInfo, payload []byte) (tensor.Tensor, error) {
	start, end := info.DataOffsets[0], info.DataOffsets[1]
	if start < 0 || end < start || end > int64(len(payload)) {
		return tensor.Tensor{}, fmt.Errorf("tensor %q: data offsets [%d, %d) out of range", name, start, end)
	}
	section := payload[start:end]

	count := tensor.NumElements(info.Shape)
	data := make([]float32, count)

	switch info.DType {
	case "F32":
		if len(section) != count*4 {
			return tensor.Tensor{}, fmt.Errorf("tensor %q: expected %d bytes of F32 data, got %d", name, count*4, len(section))
		}
		for i := range data {
			bits := binary.LittleEndian.Uint32(section[i*4:])
			data[i] = math.Float32frombits(bits)
		}
	case "F64":
		if len(section) != count*8 {
			return tensor.Tensor{}, fmt.Errorf("tensor %q: expected %d bytes of F64 data, got %d", name, count*8, len(section))
		}
		for i := range data {
			bits := binary.LittleEndian.Uint64(section[i*8:])
			data[i] = float32(math.Float64frombits(bits))
		}
	default:
		return tensor.Tensor{}, fmt.Errorf("tensor %q: unsupported dtype %s", name, info.DType)
	}

	return tensor.New(info.Shape, data)
}
