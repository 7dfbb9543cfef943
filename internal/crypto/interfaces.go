package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_box_mock.go -package=mock

// SecretBox seals short secrets, such as git passwords, before they are
// written to the settings database.
//
// Layout of a sealed value:
//
//	"sbx1:" + base64(salt ‖ nonce ‖ ciphertext)
//
// The key is derived from the backend secret and the per-value salt with
// Argon2id, and the payload is encrypted with AES-256-GCM.
type SecretBox interface {
	// Seal encrypts plaintext. The empty string is returned unchanged so an
	// unset password stays unset.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. Values without the sealed prefix are returned as
	// they are, which keeps rows written before sealing was enabled readable.
	// A sealed value that fails authentication returns [ErrOpenFailed].
	Open(sealed string) (string, error)
}
