package layers

// Properties returns the flat property map published on a graph node. Every
// layer gets the common fields (type tag, trainable parameter count, bias
// presence where applicable); recognized kinds add their own declared
// construction parameters, with defaults matching the framework's
// constructors. Unrecognized kinds get only the common fields.
func Properties(kind LayerKind, tag string, attrs map[string]any) map[string]any {
	props := map[string]any{
		"type":                 tag,
		"trainable_parameters": ParameterCount(kind, attrs),
	}

	switch kind {
	case KindLinear:
		props["has_bias"] = boolAttr(attrs, "bias", true)
		props["in_features"] = intAttr(attrs, "in_features", 0)
		props["out_features"] = intAttr(attrs, "out_features", 0)

	case KindConv1d, KindConv2d, KindConv3d:
		props["has_bias"] = boolAttr(attrs, "bias", true)
		props["in_channels"] = intAttr(attrs, "in_channels", 0)
		props["out_channels"] = intAttr(attrs, "out_channels", 0)
		props["kernel_size"] = attrOr(attrs, "kernel_size", 3)
		props["stride"] = attrOr(attrs, "stride", 1)
		props["padding"] = attrOr(attrs, "padding", 0)
		props["dilation"] = attrOr(attrs, "dilation", 1)
		props["groups"] = intAttr(attrs, "groups", 1)

	case KindBatchNorm1d, KindBatchNorm2d:
		props["has_bias"] = boolAttr(attrs, "affine", true)
		props["num_features"] = intAttr(attrs, "num_features", 0)
		props["eps"] = floatAttr(attrs, "eps", 1e-5)
		props["momentum"] = floatAttr(attrs, "momentum", 0.1)
		props["affine"] = boolAttr(attrs, "affine", true)
		props["track_running_stats"] = boolAttr(attrs, "track_running_stats", true)

	case KindLayerNorm:
		props["has_bias"] = boolAttr(attrs, "elementwise_affine", true)
		props["normalized_shape"] = attrOr(attrs, "normalized_shape", 0)
		props["eps"] = floatAttr(attrs, "eps", 1e-5)
		props["elementwise_affine"] = boolAttr(attrs, "elementwise_affine", true)

	case KindRNN, KindLSTM, KindGRU:
		props["has_bias"] = boolAttr(attrs, "bias", true)
		props["input_size"] = intAttr(attrs, "input_size", 0)
		props["hidden_size"] = intAttr(attrs, "hidden_size", 0)
		props["num_layers"] = intAttr(attrs, "num_layers", 1)
		props["batch_first"] = boolAttr(attrs, "batch_first", false)
		props["dropout"] = floatAttr(attrs, "dropout", 0)
		props["bidirectional"] = boolAttr(attrs, "bidirectional", false)

	case KindMaxPool1d, KindMaxPool2d, KindAvgPool1d, KindAvgPool2d:
		kernel := attrOr(attrs, "kernel_size", 2)
		props["kernel_size"] = kernel
		// Stride defaults to the kernel size for pooling layers.
		props["stride"] = attrOr(attrs, "stride", kernel)
		props["padding"] = attrOr(attrs, "padding", 0)

	case KindAdaptiveMaxPool2d, KindAdaptiveAvgPool2d:
		props["output_size"] = attrOr(attrs, "output_size", 1)

	case KindDropout:
		props["p"] = floatAttr(attrs, "p", 0.5)
		props["inplace"] = boolAttr(attrs, "inplace", false)

	case KindReLU:
		props["inplace"] = boolAttr(attrs, "inplace", false)

	case KindLeakyReLU:
		props["negative_slope"] = floatAttr(attrs, "negative_slope", 0.01)
		props["inplace"] = boolAttr(attrs, "inplace", false)

	case KindELU:
		props["alpha"] = floatAttr(attrs, "alpha", 1.0)
		props["inplace"] = boolAttr(attrs, "inplace", false)

	case KindSoftmax:
		props["dim"] = intAttr(attrs, "dim", -1)

	case KindFlatten:
		props["start_dim"] = intAttr(attrs, "start_dim", 1)
		props["end_dim"] = intAttr(attrs, "end_dim", -1)

	case KindEmbedding:
		props["num_embeddings"] = intAttr(attrs, "num_embeddings", 0)
		props["embedding_dim"] = intAttr(attrs, "embedding_dim", 0)
		if v, ok := attrs["padding_idx"]; ok && v != nil {
			props["padding_idx"] = v
		}
		if v, ok := attrs["max_norm"]; ok && v != nil {
			props["max_norm"] = v
			props["norm_type"] = floatAttr(attrs, "norm_type", 2.0)
		}
		props["scale_grad_by_freq"] = boolAttr(attrs, "scale_grad_by_freq", false)
		props["sparse"] = boolAttr(attrs, "sparse", false)

	case KindTransformerEncoderLayer, KindTransformerDecoderLayer:
		props["has_bias"] = boolAttr(attrs, "bias", true)
		props["d_model"] = intAttr(attrs, "d_model", 0)
		props["nhead"] = intAttr(attrs, "nhead", 0)
		props["dim_feedforward"] = intAttr(attrs, "dim_feedforward", 2048)
		props["dropout"] = floatAttr(attrs, "dropout", 0.1)
		props["activation"] = attrOr(attrs, "activation", "relu")
		props["layer_norm_eps"] = floatAttr(attrs, "layer_norm_eps", 1e-5)
		props["batch_first"] = boolAttr(attrs, "batch_first", false)
		props["norm_first"] = boolAttr(attrs, "norm_first", false)
	}

	return props
}
