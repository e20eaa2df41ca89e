package intcodec

import "encoding/json"

// jsonAlgorithm is the on-wire shape of a CompressionAlgorithm: a
// discriminant naming the kind, plus the level field Zstd uses.
type jsonAlgorithm struct {
	Kind  string `json:"kind"`
	Level int32  `json:"level,omitempty"`
}

type jsonCompressionConfig struct {
	BinaryData jsonAlgorithm `json:"binary_data"`
	Strings    jsonAlgorithm `json:"strings"`
}

func algorithmToJSON(a CompressionAlgorithm) (jsonAlgorithm, error) {
	switch v := a.(type) {
	case None:
		return jsonAlgorithm{Kind: "none"}, nil
	case Zstd:
		return jsonAlgorithm{Kind: "zstd", Level: v.Level}, nil
	default:
		return jsonAlgorithm{}, errorf("unknown compression algorithm %T", a)
	}
}

func algorithmFromJSON(j jsonAlgorithm) (CompressionAlgorithm, error) {
	switch j.Kind {
	case "none":
		return None{}, nil
	case "zstd":
		return Zstd{Level: j.Level}, nil
	default:
		return nil, errorf("unknown compression algorithm kind %q", j.Kind)
	}
}

// MarshalConfig encodes a CompressionConfig as JSON, tagged by
// discriminant name with fields by key, per spec.md §6.
func MarshalConfig(c CompressionConfig) ([]byte, error) {
	bd, err := algorithmToJSON(c.BinaryData)
	if err != nil {
		return nil, err
	}
	s, err := algorithmToJSON(c.Strings)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(jsonCompressionConfig{BinaryData: bd, Strings: s})
	if err != nil {
		return nil, errorf("marshal compression config: %v", err)
	}
	return b, nil
}

// UnmarshalConfig decodes a CompressionConfig previously written by
// MarshalConfig.
func UnmarshalConfig(b []byte) (CompressionConfig, error) {
	var j jsonCompressionConfig
	if err := json.Unmarshal(b, &j); err != nil {
		return CompressionConfig{}, errorf("unmarshal compression config: %v", err)
	}
	bd, err := algorithmFromJSON(j.BinaryData)
	if err != nil {
		return CompressionConfig{}, err
	}
	s, err := algorithmFromJSON(j.Strings)
	if err != nil {
		return CompressionConfig{}, err
	}
	return CompressionConfig{BinaryData: bd, Strings: s}, nil
}
