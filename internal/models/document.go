package models

// UploadedDocument is a résumé as received from the client.
type UploadedDocument struct {
	Filename string
	Content  []byte
}
