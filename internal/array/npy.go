package array

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// npyMagic is the signature of the NumPy array container format.
var npyMagic = []byte("\x93NUMPY")

var (
	npyDescrRe   = regexp.MustCompile(`'descr'\s*:\s*'([^']+)'`)
	npyFortranRe = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	npyShapeRe   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// LoadNPY reads a .npy array dump from disk.
func LoadNPY(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Wrapped: ErrNotFound}
		}
		return nil, &LoadError{Path: path, Wrapped: err}
	}
	defer f.Close()

	a, err := ReadNPY(f)
	if err != nil {
		return nil, &LoadError{Path: path, Wrapped: err}
	}
	return a, nil
}

// ReadNPY decodes a .npy stream (format versions 1.0 through 3.0). The
// header is a self-describing dict carrying dtype, memory order and shape.
func ReadNPY(r io.Reader) (*Array, error) {
	pre := make([]byte, 8)
	if _, err := io.ReadFull(r, pre); err != nil {
		return nil, fmt.Errorf("%w: truncated npy preamble", ErrFormat)
	}
	if !bytes.Equal(pre[:6], npyMagic) {
		return nil, fmt.Errorf("%w: missing npy magic", ErrFormat)
	}
	major := pre[6]

	var headerLen int
	switch major {
	case 1:
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("%w: truncated npy header length", ErrFormat)
		}
		headerLen = int(n)
	case 2, 3:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("%w: truncated npy header length", ErrFormat)
		}
		headerLen = int(n)
	default:
		return nil, fmt.Errorf("%w: unsupported npy version %d", ErrFormat, major)
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: truncated npy header", ErrFormat)
	}

	descr, fortran, shape, err := parseNPYHeader(string(header))
	if err != nil {
		return nil, err
	}

	count := 1
	for _, d := range shape {
		count *= d
	}

	data, err := decodeNPYData(r, descr, count)
	if err != nil {
		return nil, err
	}

	if fortran && len(shape) > 1 {
		if len(shape) != 2 {
			return nil, fmt.Errorf("%w: fortran order unsupported for rank %d", ErrFormat, len(shape))
		}
		data = transposeToRowMajor(data, shape[0], shape[1])
	}

	// A 0-d dump carries a single scalar; present it as a length-1 vector.
	if len(shape) == 0 {
		shape = []int{1}
	}

	return New(data, shape...)
}

func parseNPYHeader(header string) (descr string, fortran bool, shape []int, err error) {
	m := npyDescrRe.FindStringSubmatch(header)
	if m == nil {
		return "", false, nil, fmt.Errorf("%w: npy header missing descr", ErrFormat)
	}
	descr = m[1]

	m = npyFortranRe.FindStringSubmatch(header)
	if m == nil {
		return "", false, nil, fmt.Errorf("%w: npy header missing fortran_order", ErrFormat)
	}
	fortran = m[1] == "True"

	m = npyShapeRe.FindStringSubmatch(header)
	if m == nil {
		return "", false, nil, fmt.Errorf("%w: npy header missing shape", ErrFormat)
	}
	for _, field := range strings.Split(m[1], ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, convErr := strconv.Atoi(field)
		if convErr != nil || d < 0 {
			return "", false, nil, fmt.Errorf("%w: bad npy shape dimension %q", ErrFormat, field)
		}
		shape = append(shape, d)
	}
	return descr, fortran, shape, nil
}

// decodeNPYData reads count elements of the given dtype descriptor into
// float64 values. Complex elements decode to their magnitude.
func decodeNPYData(r io.Reader, descr string, count int) ([]float64, error) {
	order, kind, size, err := parseDtype(descr)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(raw) < count*size {
		return nil, fmt.Errorf("%w: npy payload holds %d bytes, need %d", ErrFormat, len(raw), count*size)
	}

	data := make([]float64, count)
	for i := 0; i < count; i++ {
		el := raw[i*size : (i+1)*size]
		switch {
		case kind == 'f' && size == 8:
			data[i] = math.Float64frombits(order.Uint64(el))
		case kind == 'f' && size == 4:
			data[i] = float64(math.Float32frombits(order.Uint32(el)))
		case kind == 'i' && size == 8:
			data[i] = float64(int64(order.Uint64(el)))
		case kind == 'i' && size == 4:
			data[i] = float64(int32(order.Uint32(el)))
		case kind == 'i' && size == 2:
			data[i] = float64(int16(order.Uint16(el)))
		case kind == 'i' && size == 1:
			data[i] = float64(int8(el[0]))
		case kind == 'u' && size == 8:
			data[i] = float64(order.Uint64(el))
		case kind == 'u' && size == 4:
			data[i] = float64(order.Uint32(el))
		case kind == 'u' && size == 2:
			data[i] = float64(order.Uint16(el))
		case (kind == 'u' || kind == 'b') && size == 1:
			data[i] = float64(el[0])
		case kind == 'c' && size == 8:
			re := float64(math.Float32frombits(order.Uint32(el[:4])))
			im := float64(math.Float32frombits(order.Uint32(el[4:])))
			data[i] = math.Hypot(re, im)
		case kind == 'c' && size == 16:
			re := math.Float64frombits(order.Uint64(el[:8]))
			im := math.Float64frombits(order.Uint64(el[8:]))
			data[i] = math.Hypot(re, im)
		default:
			return nil, fmt.Errorf("%w: unsupported npy dtype %q", ErrFormat, descr)
		}
	}
	return data, nil
}

func parseDtype(descr string) (binary.ByteOrder, byte, int, error) {
	if descr == "" {
		return nil, 0, 0, fmt.Errorf("%w: empty npy dtype", ErrFormat)
	}

	var order binary.ByteOrder = binary.LittleEndian
	rest := descr
	switch descr[0] {
	case '<', '=', '|':
		rest = descr[1:]
	case '>':
		order = binary.BigEndian
		rest = descr[1:]
	}
	if len(rest) < 2 {
		return nil, 0, 0, fmt.Errorf("%w: unsupported npy dtype %q", ErrFormat, descr)
	}

	size, err := strconv.Atoi(rest[1:])
	if err != nil || size <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: unsupported npy dtype %q", ErrFormat, descr)
	}
	return order, rest[0], size, nil
}

// transposeToRowMajor converts column-major (Fortran order) data for a
// rows x cols array into row-major layout.
func transposeToRowMajor(data []float64, rows, cols int) []float64 {
	out := make([]float64, len(data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j] = data[j*rows+i]
		}
	}
	return out
}
