package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/hasher_mock.go -package=mock

// Hasher derives and verifies password digests. Implementations are pure:
// the same inputs always yield the same verification outcome, and no method
// touches the network or the database.
//
// AuthService depends only on this interface, so the hashing scheme can be
// swapped (e.g. HMAC → bcrypt) without changing the auth contract.
type Hasher interface {
	// Hash derives a storable digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest. The
	// comparison must not reveal partial matches through timing.
	Verify(password, digest string) bool
}
