package plot

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/matzehuels/facetplot/pkg/errors"
)

const (
	pngSignatureLen = 8
	ihdrChunkLen    = 4 + 4 + 13 + 4 // length, type, data, crc
	inchesPerMeter  = 39.3700787
)

// EncodePNG writes img as PNG with a pHYs chunk recording dpi, so viewers
// and print tools pick up the intended physical size.
func EncodePNG(w io.Writer, img image.Image, dpi int) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	data := buf.Bytes()
	split := pngSignatureLen + ihdrChunkLen

	if _, err := w.Write(data[:split]); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write png")
	}
	if dpi > 0 {
		if _, err := w.Write(physChunk(dpi)); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write png")
		}
	}
	if _, err := w.Write(data[split:]); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write png")
	}
	return nil
}

// physChunk builds a pHYs chunk: pixels per meter on both axes, unit meter.
func physChunk(dpi int) []byte {
	ppm := uint32(math.Round(float64(dpi) * inchesPerMeter))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}

// DPIFromPNG reads the pHYs chunk of an encoded PNG and returns the
// horizontal resolution in dots per inch, or 0 when absent.
func DPIFromPNG(data []byte) int {
	if len(data) < pngSignatureLen {
		return 0
	}
	for p := pngSignatureLen; p+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[p : p+4]))
		typ := string(data[p+4 : p+8])
		if typ == "pHYs" && n == 9 && p+8+9 <= len(data) && data[p+16] == 1 {
			ppm := binary.BigEndian.Uint32(data[p+8 : p+12])
			return int(math.Round(float64(ppm) / inchesPerMeter))
		}
		if typ == "IDAT" || typ == "IEND" {
			return 0
		}
		p += 8 + n + 4
	}
	return 0
}
