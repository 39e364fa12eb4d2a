package snapshot

import (
	"encoding/gob"
	"os"
	"strings"
)

// FileSink writes the normalization-parameter blob to a path derived from
// a configured model path by replacing a ".pkl" suffix with
// "_norm_params.pkl" (spec §6), using encoding/gob as the keyed-blob
// format (double-precision floats, no endianness ambiguity on a single
// host).
type FileSink struct {
	path string
}

// NewFileSink derives the snapshot path from modelPath and returns a sink
// that overwrites it on every write.
func NewFileSink(modelPath string) *FileSink {
	return &FileSink{path: normParamsPath(modelPath)}
}

// Path returns the resolved snapshot file path.
func (f *FileSink) Path() string { return f.path }

// WriteNormParams overwrites the snapshot file with params.
func (f *FileSink) WriteNormParams(params map[string][]float64) error {
	file, err := os.Create(f.path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(params)
}

// normParamsPath substitutes a ".pkl" suffix on modelPath with
// "_norm_params.pkl"; if modelPath has no ".pkl" suffix, the suffix is
// simply appended.
func normParamsPath(modelPath string) string {
	const suffix = ".pkl"
	if strings.HasSuffix(modelPath, suffix) {
		return strings.TrimSuffix(modelPath, suffix) + "_norm_params.pkl"
	}
	return modelPath + "_norm_params.pkl"
}

// TorchModelPath substitutes a ".pkl" suffix on modelPath with ".pth", per
// spec §6's get_torch_model path derivation. It lives here alongside
// normParamsPath since both are the same "derive a sibling path from
// model_path" operation.
func TorchModelPath(modelPath string) string {
	const suffix = ".pkl"
	if strings.HasSuffix(modelPath, suffix) {
		return strings.TrimSuffix(modelPath, suffix) + ".pth"
	}
	return modelPath + ".pth"
}
