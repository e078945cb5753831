/*
Package base58 provides the block-based base58 encoding used by CryptoNote
addresses.

Unlike the big-integer base58 used by Bitcoin, data is encoded in fixed-size
blocks: every 8 input bytes map to exactly 11 characters of the 58-character
alphabet "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz", and a
trailing partial block maps to a fixed, length-dependent number of characters.
This keeps the encoding O(n) and makes encoded lengths a pure function of
input lengths, which is what gives addresses their constant textual size.

The address form (EncodeAddr/DecodeAddr) prefixes the payload with a uvarint
network tag and appends a 4-byte Keccak-256 checksum before encoding, so that
transcription errors are detectable.
*/
package base58
