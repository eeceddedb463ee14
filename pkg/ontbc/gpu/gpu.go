// Package gpu selects a free CUDA device for basecalling.
package gpu

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

// EnvVisibleDevices is consulted when the configuration has no cuda_device.
const EnvVisibleDevices = "CUDA_VISIBLE_DEVICES"

var (
	// ErrNoCandidates indicates neither config nor environment lists CUDA devices.
	ErrNoCandidates = errors.New("no CUDA device in config (\"--set cuda_device=X\") or CUDA_VISIBLE_DEVICES")
	// ErrInvalidDeviceList is the sentinel error wrapped by InvalidDeviceListError.
	ErrInvalidDeviceList = errors.New("invalid CUDA device list")
	// ErrNoFreeDevice is the sentinel error wrapped by NoFreeDeviceError.
	ErrNoFreeDevice = errors.New("no free CUDA device")
)

// InvalidDeviceListError is returned when a candidate list has a non-integer entry.
type InvalidDeviceListError struct {
	List  string
	Entry string
}

func (e *InvalidDeviceListError) Error() string {
	return fmt.Sprintf("invalid CUDA device %q in list %q", e.Entry, e.List)
}

// Unwrap returns ErrInvalidDeviceList for errors.Is() compatibility.
func (e *InvalidDeviceListError) Unwrap() error { return ErrInvalidDeviceList }

// NoFreeDeviceError is returned when none of the candidates is idle.
type NoFreeDeviceError struct {
	Candidates string
}

func (e *NoFreeDeviceError) Error() string {
	return fmt.Sprintf("no available or configured CUDA devices were free: CUDA devices = %s", e.Candidates)
}

// Unwrap returns ErrNoFreeDevice for errors.Is() compatibility.
func (e *NoFreeDeviceError) Unwrap() error { return ErrNoFreeDevice }

// Utilization is one line of the device utilization report.
type Utilization struct {
	Index  int
	GPU    string
	Memory string
}

// Free reports whether both GPU and memory utilization are zero.
func (u Utilization) Free() bool {
	return firstToken(u.GPU) == "0" && firstToken(u.Memory) == "0"
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Querier reports device utilization.
type Querier interface {
	Query(ctx context.Context) ([]Utilization, error)
}

// NvidiaSMI queries utilization with the nvidia-smi utility.
type NvidiaSMI struct {
	// Path is the executable. Empty resolves "nvidia-smi" on PATH.
	Path string
}

// Query runs nvidia-smi and parses its CSV report.
func (n NvidiaSMI) Query(ctx context.Context) ([]Utilization, error) {
	bin := n.Path
	if bin == "" {
		bin = "nvidia-smi"
	}
	cmd := exec.CommandContext(ctx, bin, "--format=csv", "--query-gpu=index,utilization.gpu,utilization.memory")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", bin, err)
	}
	return ParseReport(bytes.NewReader(out))
}

// ParseReport parses "index, utilization.gpu [%], utilization.memory [%]" CSV output.
// The first line is a header and is skipped.
func ParseReport(r io.Reader) ([]Utilization, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var report []Utilization
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse utilization report: %w", err)
		}
		if header {
			header = false
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("parse utilization report: device index %q: %w", rec[0], err)
		}
		report = append(report, Utilization{
			Index:  idx,
			GPU:    strings.TrimSpace(rec[1]),
			Memory: strings.TrimSpace(rec[2]),
		})
	}

	return report, nil
}

// FreeDevices returns the indexes of idle devices in report order.
func FreeDevices(ctx context.Context, q Querier) ([]int, error) {
	report, err := q.Query(ctx)
	if err != nil {
		return nil, err
	}
	var free []int
	for _, u := range report {
		if u.Free() {
			free = append(free, u.Index)
		}
	}
	return free, nil
}

// Candidates returns the configured candidate list: cuda_device from the
// configuration, else CUDA_VISIBLE_DEVICES from env.
func Candidates(cfg *models.GlobalConfig, env shell.Env) (string, error) {
	if cfg != nil && cfg.CudaDevice != nil {
		return *cfg.CudaDevice, nil
	}
	if v, ok := env[EnvVisibleDevices]; ok {
		return v, nil
	}
	return "", ErrNoCandidates
}

// ParseDeviceList parses a comma-separated list of device indexes.
func ParseDeviceList(list string) ([]int, error) {
	var devices []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, &InvalidDeviceListError{List: list, Entry: part}
		}
		devices = append(devices, idx)
	}
	return devices, nil
}

// Select returns the first device of candidates that q reports as free.
func Select(ctx context.Context, candidates string, q Querier) (int, error) {
	devices, err := ParseDeviceList(candidates)
	if err != nil {
		return 0, err
	}

	free, err := FreeDevices(ctx, q)
	if err != nil {
		return 0, err
	}
	isFree := make(map[int]bool, len(free))
	for _, idx := range free {
		isFree[idx] = true
	}

	for _, idx := range devices {
		if isFree[idx] {
			return idx, nil
		}
	}
	return 0, &NoFreeDeviceError{Candidates: candidates}
}
