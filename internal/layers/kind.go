// Package layers defines the supported layer catalogue and extracts the
// semantic properties published on graph nodes.
package layers

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLayer marks descriptor entries whose type tag falls outside
// the supported catalogue. Fatal on the descriptor path; the live path
// degrades to KindUnknown instead.
var ErrUnsupportedLayer = errors.New("unsupported layer type")

// LayerKind enumerates the supported layer catalogue.
type LayerKind int

const (
	KindUnknown LayerKind = iota
	KindLinear
	KindConv1d
	KindConv2d
	KindConv3d
	KindBatchNorm1d
	KindBatchNorm2d
	KindLayerNorm
	KindRNN
	KindLSTM
	KindGRU
	KindMaxPool1d
	KindMaxPool2d
	KindAvgPool1d
	KindAvgPool2d
	KindAdaptiveMaxPool2d
	KindAdaptiveAvgPool2d
	KindDropout
	KindReLU
	KindLeakyReLU
	KindELU
	KindGELU
	KindSigmoid
	KindTanh
	KindSoftmax
	KindFlatten
	KindEmbedding
	KindTransformerEncoderLayer
	KindTransformerDecoderLayer
	KindSequential
)

var kindTags = map[LayerKind]string{
	KindLinear:                  "Linear",
	KindConv1d:                  "Conv1d",
	KindConv2d:                  "Conv2d",
	KindConv3d:                  "Conv3d",
	KindBatchNorm1d:             "BatchNorm1d",
	KindBatchNorm2d:             "BatchNorm2d",
	KindLayerNorm:               "LayerNorm",
	KindRNN:                     "RNN",
	KindLSTM:                    "LSTM",
	KindGRU:                     "GRU",
	KindMaxPool1d:               "MaxPool1d",
	KindMaxPool2d:               "MaxPool2d",
	KindAvgPool1d:               "AvgPool1d",
	KindAvgPool2d:               "AvgPool2d",
	KindAdaptiveMaxPool2d:       "AdaptiveMaxPool2d",
	KindAdaptiveAvgPool2d:       "AdaptiveAvgPool2d",
	KindDropout:                 "Dropout",
	KindReLU:                    "ReLU",
	KindLeakyReLU:               "LeakyReLU",
	KindELU:                     "ELU",
	KindGELU:                    "GELU",
	KindSigmoid:                 "Sigmoid",
	KindTanh:                    "Tanh",
	KindSoftmax:                 "Softmax",
	KindFlatten:                 "Flatten",
	KindEmbedding:               "Embedding",
	KindTransformerEncoderLayer: "TransformerEncoderLayer",
	KindTransformerDecoderLayer: "TransformerDecoderLayer",
	KindSequential:              "Sequential",
}

var tagKinds = func() map[string]LayerKind {
	m := make(map[string]LayerKind, len(kindTags))
	for kind, tag := range kindTags {
		m[tag] = kind
	}
	return m
}()

func (k LayerKind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return "Unknown"
}

// ParseLayerKind resolves a descriptor type tag. An unsupported tag yields an
// error naming the tag, which fails the whole conversion.
func ParseLayerKind(tag string) (LayerKind, error) {
	if kind, ok := tagKinds[tag]; ok {
		return kind, nil
	}
	return KindUnknown, fmt.Errorf("%w: %s", ErrUnsupportedLayer, tag)
}

// KindOf resolves a tag leniently for live-model traversal, where unknown
// layer kinds degrade to the common fields instead of failing.
func KindOf(tag string) LayerKind {
	return tagKinds[tag]
}

// IsContainer reports whether the kind is a pure-sequential container.
func (k LayerKind) IsContainer() bool {
	return k == KindSequential
}
