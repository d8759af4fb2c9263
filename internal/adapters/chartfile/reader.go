package chartfile

import (
	"errors"
	"fmt"
	"house-engine/internal/domain"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// StdinPath makes ReadChart read from the supplied reader instead of a file.
const StdinPath = "-"

// ReadChart loads a chart record from a YAML or JSON file.
func ReadChart(path string, stdin io.Reader) (domain.Chart, error) {
	if path == "" || path == StdinPath {
		chart, err := DecodeChart(stdin)
		if err != nil {
			return domain.Chart{}, fmt.Errorf("read chart: stdin: %w", err)
		}
		return chart, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Chart{}, fmt.Errorf("read chart: open %q: %w", path, err)
	}
	defer f.Close()

	chart, err := DecodeChart(f)
	if err != nil {
		return domain.Chart{}, fmt.Errorf("read chart: %q: %w", path, err)
	}

	return chart, nil
}

// DecodeChart parses one chart record. JSON input is accepted as YAML.
func DecodeChart(r io.Reader) (domain.Chart, error) {
	if r == nil {
		return domain.Chart{}, errors.New("decode chart: reader is nil")
	}

	var rec map[string]any
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Chart{}, fmt.Errorf("decode chart: empty input: %w", domain.ErrInvalidChart)
		}
		return domain.Chart{}, fmt.Errorf("decode chart: parse: %w", err)
	}

	chart, err := domain.ChartFromRecord(rec)
	if err != nil {
		return domain.Chart{}, fmt.Errorf("decode chart: %w", err)
	}

	return chart, nil
}
