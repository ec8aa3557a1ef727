// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// keySize is the length of the derived key, reused as the IV.
	keySize = 16

	// kdfIterations is the PBKDF2 iteration count.
	kdfIterations = 1000

	// chunkSize is the streaming unit; it must be a multiple of aes.BlockSize.
	chunkSize = 32 * aes.BlockSize
)

// kdfSalt is the fixed salt of the key derivation.
var kdfSalt = []byte{0x49, 0x76, 0x61, 0x6e, 0x20, 0x4d, 0x65, 0x64, 0x76, 0x65, 0x64, 0x65, 0x76, 0x43, 0x6c, 0x70}

// DeriveKey returns the 16-byte key material for password. The same slice
// serves as AES key and CBC IV.
func DeriveKey(password string) []byte {
	return pbkdf2.Key([]byte(password), kdfSalt, kdfIterations, keySize, sha1.New)
}

func newBlock(password string) (cipher.Block, []byte, error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}

	key := DeriveKey(password)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}

	return block, key, nil
}

// EncryptStream reads plaintext from src until EOF and writes the
// ciphertext to dst.
func EncryptStream(dst io.Writer, src io.Reader, password string) error {
	block, iv, err := newBlock(password)
	if err != nil {
		return err
	}
	mode := cipher.NewCBCEncrypter(block, iv)

	buf := make([]byte, chunkSize, chunkSize+aes.BlockSize)
	for {
		n, err := io.ReadFull(src, buf[:chunkSize])
		switch {
		case err == nil:
			mode.CryptBlocks(buf[:n], buf[:n])
			if _, err = dst.Write(buf[:n]); err != nil {
				return fmt.Errorf("write ciphertext: %w", err)
			}
		case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
			last := pad(buf[:n])
			mode.CryptBlocks(last, last)
			if _, err = dst.Write(last); err != nil {
				return fmt.Errorf("write ciphertext: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("read plaintext: %w", err)
		}
	}
}

// DecryptStream reads ciphertext from src until EOF and writes the plaintext
// to dst. A wrong password is reported as ErrInvalidPadding in all but a
// negligible fraction of cases; callers treat any error as "unreadable".
func DecryptStream(dst io.Writer, src io.Reader, password string) error {
	block, iv, err := newBlock(password)
	if err != nil {
		return err
	}
	mode := cipher.NewCBCDecrypter(block, iv)

	buf := make([]byte, chunkSize)
	var held []byte
	for {
		n, err := io.ReadFull(src, buf)
		if n > 0 {
			if n%aes.BlockSize != 0 {
				return ErrInvalidCiphertext
			}
			// the final chunk carries the padding, so it is always held back
			if held != nil {
				if _, werr := dst.Write(held); werr != nil {
					return fmt.Errorf("write plaintext: %w", werr)
				}
			}
			held = make([]byte, n)
			mode.CryptBlocks(held, buf[:n])
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read ciphertext: %w", err)
		}
	}

	if held == nil {
		return ErrInvalidCiphertext
	}

	plain, err := unpad(held)
	if err != nil {
		return err
	}
	if _, err = dst.Write(plain); err != nil {
		return fmt.Errorf("write plaintext: %w", err)
	}

	return nil
}

// Encrypt is the in-memory form of EncryptStream.
func Encrypt(plain []byte, password string) ([]byte, error) {
	var out bytes.Buffer
	if err := EncryptStream(&out, bytes.NewReader(plain), password); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decrypt is the in-memory form of DecryptStream.
func Decrypt(ciphertext []byte, password string) ([]byte, error) {
	var out bytes.Buffer
	if err := DecryptStream(&out, bytes.NewReader(ciphertext), password); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// pad appends PKCS#7 padding; data must have spare capacity for one block.
func pad(data []byte) []byte {
	p := aes.BlockSize - len(data)%aes.BlockSize
	for i := 0; i < p; i++ {
		data = append(data, byte(p))
	}
	return data
}

func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, ErrInvalidCiphertext
	}

	p := int(data[len(data)-1])
	if p == 0 || p > aes.BlockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-p:] {
		if int(b) != p {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-p], nil
}
