package gpu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

const report = `index, utilization.gpu [%], utilization.memory [%]
0, 87 %, 40 %
1, 0 %, 0 %
2, 0 %, 3 %
3, 0 %, 0 %
`

type fakeQuerier struct {
	report []Utilization
	err    error
}

func (f fakeQuerier) Query(ctx context.Context) ([]Utilization, error) {
	return f.report, f.err
}

func parsed(t *testing.T) []Utilization {
	t.Helper()
	u, err := ParseReport(strings.NewReader(report))
	require.NoError(t, err)
	return u
}

func TestParseReport(t *testing.T) {
	u := parsed(t)
	require.Len(t, u, 4)
	assert.Equal(t, Utilization{Index: 0, GPU: "87 %", Memory: "40 %"}, u[0])
	assert.True(t, u[1].Free())
	assert.False(t, u[2].Free())
}

func TestParseReport_Malformed(t *testing.T) {
	_, err := ParseReport(strings.NewReader("index, gpu, mem\nx, 0 %, 0 %\n"))
	require.Error(t, err)

	_, err = ParseReport(strings.NewReader("index, gpu, mem\n0, 0 %\n"))
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	q := fakeQuerier{report: parsed(t)}

	tests := []struct {
		candidates string
		expected   int
	}{
		{"0,1,2,3", 1},
		{"3,1", 3},
		{"2, 3", 3},
	}
	for _, tt := range tests {
		got, err := Select(context.Background(), tt.candidates, q)
		require.NoError(t, err, tt.candidates)
		assert.Equal(t, tt.expected, got, tt.candidates)
	}
}

func TestSelect_NoneFree(t *testing.T) {
	_, err := Select(context.Background(), "0,2", fakeQuerier{report: parsed(t)})
	require.ErrorIs(t, err, ErrNoFreeDevice)
	assert.Contains(t, err.Error(), "0,2")
}

func TestSelect_InvalidList(t *testing.T) {
	_, err := Select(context.Background(), "0,gpu1", fakeQuerier{})

	var listErr *InvalidDeviceListError
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, "gpu1", listErr.Entry)
}

func TestSelect_QueryError(t *testing.T) {
	boom := errors.New("nvidia-smi not found")
	_, err := Select(context.Background(), "0", fakeQuerier{err: boom})
	require.ErrorIs(t, err, boom)
}

func TestCandidates(t *testing.T) {
	env := shell.Env{EnvVisibleDevices: "2,3"}

	got, err := Candidates(&models.GlobalConfig{CudaDevice: ptr.To("0")}, env)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = Candidates(&models.GlobalConfig{}, env)
	require.NoError(t, err)
	assert.Equal(t, "2,3", got)

	_, err = Candidates(nil, shell.Env{})
	require.ErrorIs(t, err, ErrNoCandidates)
}

func TestNvidiaSMI_MissingBinary(t *testing.T) {
	_, err := NvidiaSMI{Path: "/nonexistent/nvidia-smi"}.Query(context.Background())
	require.Error(t, err)
}
