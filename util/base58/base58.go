package base58

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	fullBlockSize        = 8
	fullEncodedBlockSize = 11

	// ChecksumSize is the number of Keccak-256 bytes appended to the
	// tag+payload of an encoded address.
	ChecksumSize = 4
)

// encodedBlockSizes[n] is the number of characters an n-byte block encodes
// to. The mapping is a bijection, so encoded chunk sizes of 1, 4 and 8
// characters can never occur in valid input.
var encodedBlockSizes = [fullBlockSize + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

var decodedBlockSizes = func() [fullEncodedBlockSize + 1]int {
	var sizes [fullEncodedBlockSize + 1]int
	for i := range sizes {
		sizes[i] = -1
	}
	for decoded, encoded := range encodedBlockSizes {
		sizes[encoded] = decoded
	}
	return sizes
}()

var alphabetIndex = func() [256]int {
	var index [256]int
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		index[alphabet[i]] = i
	}
	return index
}()

// These errors describe the ways a base58 string can fail to decode. They
// are returned wrapped with positional context; use errors.Is to test for
// them.
var (
	// ErrInvalidCharacter indicates a character outside the base58 alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")

	// ErrInvalidBlockSize indicates an encoded chunk size that no block
	// length produces.
	ErrInvalidBlockSize = errors.New("invalid base58 block size")

	// ErrBlockOverflow indicates an encoded block whose value does not fit
	// in its decoded width.
	ErrBlockOverflow = errors.New("base58 block value overflows its width")

	// ErrChecksumMismatch indicates the trailing address checksum does not
	// match the checksum recomputed over the decoded data.
	ErrChecksumMismatch = errors.New("base58 address checksum mismatch")

	// ErrAddressTooShort indicates an address whose decoded form is too
	// short to contain a tag and a checksum.
	ErrAddressTooShort = errors.New("base58 address too short")
)

// Encode encodes data as block base58. It is total: every byte string,
// including the empty one, has an encoding.
func Encode(data []byte) string {
	fullBlocks := len(data) / fullBlockSize
	lastBlockSize := len(data) % fullBlockSize

	res := make([]byte, fullBlocks*fullEncodedBlockSize+encodedBlockSizes[lastBlockSize])
	for i := range res {
		res[i] = alphabet[0]
	}

	for i := 0; i < fullBlocks; i++ {
		encodeBlock(data[i*fullBlockSize:(i+1)*fullBlockSize], res[i*fullEncodedBlockSize:])
	}
	if lastBlockSize > 0 {
		encodeBlock(data[fullBlocks*fullBlockSize:], res[fullBlocks*fullEncodedBlockSize:])
	}

	return string(res)
}

// Decode is the inverse of Encode. It fails on characters outside the
// alphabet, on impossible chunk sizes and on overflowing block values.
func Decode(enc string) ([]byte, error) {
	fullBlocks := len(enc) / fullEncodedBlockSize
	lastBlockSize := len(enc) % fullEncodedBlockSize

	lastDecodedSize := decodedBlockSizes[lastBlockSize]
	if lastDecodedSize < 0 {
		return nil, errors.Wrapf(ErrInvalidBlockSize, "trailing block of %d characters", lastBlockSize)
	}

	data := make([]byte, fullBlocks*fullBlockSize+lastDecodedSize)
	for i := 0; i < fullBlocks; i++ {
		err := decodeBlock(enc[i*fullEncodedBlockSize:(i+1)*fullEncodedBlockSize],
			data[i*fullBlockSize:(i+1)*fullBlockSize])
		if err != nil {
			return nil, err
		}
	}
	if lastBlockSize > 0 {
		err := decodeBlock(enc[fullBlocks*fullEncodedBlockSize:], data[fullBlocks*fullBlockSize:])
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}

// EncodeAddr encodes an address: uvarint tag, payload, then a ChecksumSize
// Keccak-256 checksum over both, all base58 encoded.
func EncodeAddr(tag uint64, data []byte) string {
	buf := make([]byte, binary.MaxVarintLen64, binary.MaxVarintLen64+len(data)+ChecksumSize)
	n := binary.PutUvarint(buf, tag)
	buf = append(buf[:n], data...)

	checksum := addressChecksum(buf)
	buf = append(buf, checksum[:]...)

	return Encode(buf)
}

// DecodeAddr decodes an address produced by EncodeAddr, verifying the
// checksum and splitting off the tag.
func DecodeAddr(addr string) (tag uint64, data []byte, err error) {
	decoded, err := Decode(addr)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) <= ChecksumSize {
		return 0, nil, errors.Wrapf(ErrAddressTooShort, "%d bytes decoded", len(decoded))
	}

	body := decoded[:len(decoded)-ChecksumSize]
	expected := addressChecksum(body)
	if !bytes.Equal(decoded[len(decoded)-ChecksumSize:], expected[:]) {
		return 0, nil, errors.WithStack(ErrChecksumMismatch)
	}

	tag, tagLen := binary.Uvarint(body)
	if tagLen <= 0 {
		return 0, nil, errors.Wrap(ErrAddressTooShort, "malformed tag varint")
	}

	return tag, body[tagLen:], nil
}

func addressChecksum(data []byte) [ChecksumSize]byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)

	var checksum [ChecksumSize]byte
	copy(checksum[:], hash.Sum(nil))
	return checksum
}

// encodeBlock writes the base58 form of up to 8 bytes into out, which must
// be pre-filled with alphabet[0] so untouched leading positions stay zero.
func encodeBlock(block []byte, out []byte) {
	num := uint64(0)
	for _, b := range block {
		num = num<<8 | uint64(b)
	}

	for i := encodedBlockSizes[len(block)] - 1; num > 0; i-- {
		out[i] = alphabet[num%58]
		num /= 58
	}
}

func decodeBlock(enc string, out []byte) error {
	num := uint64(0)
	for i := 0; i < len(enc); i++ {
		digit := alphabetIndex[enc[i]]
		if digit < 0 {
			return errors.Wrapf(ErrInvalidCharacter, "character %q", enc[i])
		}
		if num > (math.MaxUint64-uint64(digit))/58 {
			return errors.Wrapf(ErrBlockOverflow, "block %q", enc)
		}
		num = num*58 + uint64(digit)
	}

	if len(out) < fullBlockSize && num >= uint64(1)<<(8*len(out)) {
		return errors.Wrapf(ErrBlockOverflow, "block %q", enc)
	}

	for i := len(out) - 1; i >= 0; i-- {
		out[i] = byte(num)
		num >>= 8
	}

	return nil
}
