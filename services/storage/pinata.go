package storage

import (
	"bytes"
	"context"
	"fmt"

	"dlms/config"

	"github.com/go-resty/resty/v2"
)

// Provider is the content-addressed storage abstraction used by the media
// service. UploadFile returns the opaque content identifier for the stored
// bytes; AccessURL resolves an identifier to a public URL.
type Provider interface {
	UploadFile(ctx context.Context, fileName string, data []byte) (string, error)
	AccessURL(contentIdentifier string) string
}

// PinataProvider stores files on IPFS through the Pinata pinning API
type PinataProvider struct {
	client    *resty.Client
	apiKey    string
	secretKey string
	uploadURL string
	gateway   string
}

// NewPinataProvider builds an IPFS provider from the application config
func NewPinataProvider() *PinataProvider {
	return &PinataProvider{
		client:    resty.New(),
		apiKey:    config.AppConfig.PinataAPIKey,
		secretKey: config.AppConfig.PinataSecretKey,
		uploadURL: config.AppConfig.PinataUploadURL,
		gateway:   config.AppConfig.PinataGateway,
	}
}

type pinataResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// UploadFile pins the file bytes and returns the resulting IPFS CID
func (p *PinataProvider) UploadFile(ctx context.Context, fileName string, data []byte) (string, error) {
	var result pinataResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("pinata_api_key", p.apiKey).
		SetHeader("pinata_secret_api_key", p.secretKey).
		SetFileReader("file", fileName, bytes.NewReader(data)).
		SetResult(&result).
		Post(p.uploadURL)
	if err != nil {
		return "", fmt.Errorf("error communicating with Pinata API: %w", err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("failed to upload to Pinata: %s", resp.Status())
	}
	if result.IpfsHash == "" {
		return "", fmt.Errorf("pinata response missing IpfsHash")
	}

	return result.IpfsHash, nil
}

// AccessURL resolves a CID to its public gateway URL
func (p *PinataProvider) AccessURL(contentIdentifier string) string {
	return p.gateway + contentIdentifier
}
