package service

// TokenCache remembers the last token seen valid per identity for a short
// TTL. It is process-local; Evict must be called on logout.
type TokenCache interface {
	Get(identity string) (string, bool)
	Set(identity, token string)
	Evict(identity string)
}
