package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/asm4004/internal/arch/i4004"
	"github.com/retroenv/asm4004/internal/assembler"
	"github.com/retroenv/asm4004/internal/operand"
	"github.com/retroenv/asm4004/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const testProgram = `; counts R4 up until it wraps
start:
	FIM R0R1, 0x45
loop:
	INC R4
	ISZ R4, loop
	JUN start
`

var testBinary = []byte{0x20, 0x45, 0x64, 0x74, 0x02, 0x40, 0x00}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	return New(log.NewTestLogger(t), i4004.New(), options.NewAssembler())
}

func TestNew(t *testing.T) {
	p := newTestPipeline(t)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
	assert.NotNil(t, p.assembler)
}

func TestExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.asm")
	assert.NoError(t, os.WriteFile(path, []byte(testProgram), 0o600))

	p := newTestPipeline(t)
	opts := options.Program{}
	opts.Input = path
	opts.Symbols = true

	var buf bytes.Buffer
	result, err := p.Execute(context.Background(), opts, &buf)
	assert.NoError(t, err)
	assert.Equal(t, testBinary, buf.Bytes())
	assert.Equal(t, len(testBinary), result.Size)
	assert.Equal(t, 2, result.Symbols.Len())
}

func TestExecute_MissingFile(t *testing.T) {
	p := newTestPipeline(t)
	opts := options.Program{}
	opts.Input = filepath.Join(t.TempDir(), "missing.asm")

	var buf bytes.Buffer
	_, err := p.Execute(context.Background(), opts, &buf)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, 0, buf.Len())
}

func TestExecuteWithSource(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    []byte
		wantErr error
	}{
		{
			name: "program",
			code: testProgram,
			want: testBinary,
		},
		{
			name:    "undefined label writes nothing",
			code:    "NOP\nJUN missing\n",
			wantErr: operand.ErrUndefinedLabel,
		},
		{
			name:    "unknown mnemonic in first pass",
			code:    "NOP\nR3\n",
			wantErr: assembler.ErrUnknownMnemonic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(t)

			var buf bytes.Buffer
			_, err := p.ExecuteWithSource(context.Background(), []byte(tt.code), options.Program{}, &buf)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, 0, buf.Len())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, buf.Bytes())
		})
	}
}

func TestExecuteWithSource_Idempotent(t *testing.T) {
	p := newTestPipeline(t)

	var first, second bytes.Buffer
	_, err := p.ExecuteWithSource(context.Background(), []byte(testProgram), options.Program{}, &first)
	assert.NoError(t, err)
	_, err = p.ExecuteWithSource(context.Background(), []byte(testProgram), options.Program{}, &second)
	assert.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}
