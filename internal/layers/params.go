package layers

// spatialRank maps convolutional kinds to the number of spatial dimensions
// their kernels span.
func spatialRank(kind LayerKind) int {
	switch kind {
	case KindConv1d:
		return 1
	case KindConv2d:
		return 2
	case KindConv3d:
		return 3
	}
	return 0
}

// gatesPerCell maps recurrent kinds to the gate count multiplying their
// weight matrices.
func gatesPerCell(kind LayerKind) int {
	switch kind {
	case KindLSTM:
		return 4
	case KindGRU:
		return 3
	}
	return 1
}

// ParameterCount computes the trainable scalar parameter count from the
// declared construction parameters. Kinds without learnable parameters and
// unrecognized kinds report zero.
func ParameterCount(kind LayerKind, attrs map[string]any) int {
	switch kind {
	case KindLinear:
		in := intAttr(attrs, "in_features", 0)
		out := intAttr(attrs, "out_features", 0)
		count := in * out
		if boolAttr(attrs, "bias", true) {
			count += out
		}
		return count

	case KindConv1d, KindConv2d, KindConv3d:
		in := intAttr(attrs, "in_channels", 0)
		out := intAttr(attrs, "out_channels", 0)
		groups := intAttr(attrs, "groups", 1)
		if groups < 1 {
			groups = 1
		}
		kernel := product(dimsAttr(attrs, "kernel_size", spatialRank(kind), 3))
		count := out * (in / groups) * kernel
		if boolAttr(attrs, "bias", true) {
			count += out
		}
		return count

	case KindBatchNorm1d, KindBatchNorm2d:
		if !boolAttr(attrs, "affine", true) {
			return 0
		}
		return 2 * intAttr(attrs, "num_features", 0)

	case KindLayerNorm:
		if !boolAttr(attrs, "elementwise_affine", true) {
			return 0
		}
		// normalized_shape may be a scalar width or a full shape.
		if list, ok := attrs["normalized_shape"].([]any); ok {
			n := 1
			for _, v := range list {
				if d, ok := asInt(v); ok {
					n *= d
				}
			}
			return 2 * n
		}
		return 2 * intAttr(attrs, "normalized_shape", 0)

	case KindRNN, KindLSTM, KindGRU:
		return recurrentParameterCount(kind, attrs)

	case KindEmbedding:
		return intAttr(attrs, "num_embeddings", 0) * intAttr(attrs, "embedding_dim", 0)

	case KindTransformerEncoderLayer:
		return transformerParameterCount(attrs, 1)

	case KindTransformerDecoderLayer:
		return transformerParameterCount(attrs, 2)
	}

	return 0
}

func recurrentParameterCount(kind LayerKind, attrs map[string]any) int {
	inputSize := intAttr(attrs, "input_size", 0)
	hidden := intAttr(attrs, "hidden_size", 0)
	numLayers := intAttr(attrs, "num_layers", 1)
	gates := gatesPerCell(kind)
	bias := boolAttr(attrs, "bias", true)

	directions := 1
	if boolAttr(attrs, "bidirectional", false) {
		directions = 2
	}

	total := 0
	for layer := 0; layer < numLayers; layer++ {
		in := inputSize
		if layer > 0 {
			in = hidden * directions
		}
		per := gates*hidden*in + gates*hidden*hidden
		if bias {
			per += 2 * gates * hidden
		}
		total += per * directions
	}
	return total
}

// transformerParameterCount sums attention blocks (one for encoder layers,
// self plus cross for decoder layers), the feed-forward pair, and the
// surrounding layer norms.
func transformerParameterCount(attrs map[string]any, attnBlocks int) int {
	d := intAttr(attrs, "d_model", 0)
	ff := intAttr(attrs, "dim_feedforward", 2048)
	bias := boolAttr(attrs, "bias", true)

	attn := 4 * d * d
	feedForward := d*ff + ff*d
	if bias {
		attn += 4 * d
		feedForward += ff + d
	}
	norms := attnBlocks + 1

	return attnBlocks*attn + feedForward + norms*2*d
}
