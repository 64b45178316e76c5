package mlsag

import (
	"errors"
	"io"

	"github.com/veiltx/ringct/secp256k1"
)

var ErrInvalidEncoding = errors.New("invalid signature encoding")

// BufferLength is the serialized size: images, challenges, then row-major
// salts, each element in canonical encoding.
func (s *Signature) BufferLength() int {
	n := len(s.KeyImages)*secp256k1.PointSize + len(s.Challenges)*secp256k1.ScalarSize
	for i := range s.Salts {
		n += len(s.Salts[i]) * secp256k1.ScalarSize
	}
	return n
}

func (s *Signature) AppendBinary(preAllocatedBuf []byte) (data []byte, err error) {
	buf := preAllocatedBuf
	for i := range s.KeyImages {
		buf = append(buf, s.KeyImages[i].Slice()...)
	}
	for j := range s.Challenges {
		buf = append(buf, s.Challenges[j].Slice()...)
	}
	for i := range s.Salts {
		for j := range s.Salts[i] {
			buf = append(buf, s.Salts[i][j].Slice()...)
		}
	}
	return buf, nil
}

// FromReader decodes a signature for a rows-by-columns ring. Images must
// decode as curve points and every scalar must be canonical.
func (s *Signature) FromReader(reader io.Reader, rows, columns int) error {
	if rows <= 0 || columns <= 0 {
		return ErrInvalidEncoding
	}

	s.KeyImages = make([]secp256k1.Point, rows)
	var pointBuf secp256k1.PointBytes
	for i := range s.KeyImages {
		if _, err := io.ReadFull(reader, pointBuf[:]); err != nil {
			return err
		}
		if secp256k1.DecodeCompressedPoint(&s.KeyImages[i], pointBuf) == nil {
			return ErrInvalidEncoding
		}
	}

	var scalarBuf secp256k1.ScalarBytes
	readScalar := func(dst *secp256k1.Scalar) error {
		if _, err := io.ReadFull(reader, scalarBuf[:]); err != nil {
			return err
		}
		if dst.SetBytes(scalarBuf); !dst.IsValid() {
			return ErrInvalidEncoding
		}
		return nil
	}

	s.Challenges = make([]secp256k1.Scalar, columns)
	for j := range s.Challenges {
		if err := readScalar(&s.Challenges[j]); err != nil {
			return err
		}
	}

	s.Salts = make([][]secp256k1.Scalar, rows)
	for i := range s.Salts {
		s.Salts[i] = make([]secp256k1.Scalar, columns)
		for j := range s.Salts[i] {
			if err := readScalar(&s.Salts[i][j]); err != nil {
				return err
			}
		}
	}

	return nil
}
