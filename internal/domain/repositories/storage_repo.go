package repositories

// BlobStore hands out opaque handles for in-memory binary resources, the
// way a browser hands out object URLs. Handles stay valid until revoked.
type BlobStore interface {
	Put(data []byte, mimeType string) (string, error)
	Get(handle string) ([]byte, string, error)
	Revoke(handle string)
}
