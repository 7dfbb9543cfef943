// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// SealedPrefix marks values produced by [SecretBox.Seal].
const SealedPrefix = "sbx1:"

const saltSize = 16

var (
	ErrEmptySecret = errors.New("secret box: empty secret")
	ErrOpenFailed  = errors.New("secret box: cannot open sealed value")
)

type secretBox struct {
	secret []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSecretBox returns a [SecretBox] keyed by secret, using the Argon2id
// parameters recommended by OWASP: one iteration, 64 MiB, four threads and a
// 256-bit key.
func NewSecretBox(secret string) (SecretBox, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &secretBox{
		secret:       []byte(secret),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}, nil
}

// Seal implements [SecretBox].
func (b *secretBox) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := b.cipher(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return SealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [SecretBox].
func (b *secretBox) Open(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, SealedPrefix)
	if !ok {
		return sealed, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrOpenFailed, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := b.cipher(salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return string(plaintext), nil
}

func (b *secretBox) cipher(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(b.secret, salt, b.argonTime, b.argonMemory, b.argonThreads, b.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
