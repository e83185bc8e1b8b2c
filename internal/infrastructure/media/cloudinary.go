package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	appmedia "github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/media"
)

// Verificar en tiempo de compilación que CloudinaryHost implementa MediaHost.
var _ appmedia.MediaHost = (*CloudinaryHost)(nil)

const cloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

// CloudinaryHost adaptador que implementa MediaHost contra la API REST de
// Cloudinary. Usa net/http de la librería estándar; no requiere el SDK oficial.
type CloudinaryHost struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// NewCloudinaryHost construye el adaptador. Si las credenciales están vacías
// las llamadas devuelven error descriptivo en lugar de panic.
func NewCloudinaryHost(cloudName, apiKey, apiSecret string) *CloudinaryHost {
	return &CloudinaryHost{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type cloudinaryDestroyResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// sign calcula la firma que Cloudinary exige: los parámetros ordenados
// alfabéticamente, unidos con '&', con el api_secret concatenado al final,
// todo pasado por SHA-1.
func (h *CloudinaryHost) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + h.apiSecret))
	return hex.EncodeToString(sum[:])
}

// Upload sube la imagen local a la carpeta indicada y devuelve la URL pública
// y el public_id asignado por Cloudinary.
func (h *CloudinaryHost) Upload(ctx context.Context, localPath, folder string) (string, string, error) {
	if h.cloudName == "" || h.apiKey == "" || h.apiSecret == "" {
		return "", "", fmt.Errorf("media: credenciales de cloudinary no configuradas")
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", "", fmt.Errorf("media: abrir archivo local: %w", err)
	}
	defer file.Close()

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := h.sign(map[string]string{
		"folder":    folder,
		"timestamp": timestamp,
	})

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		defer pw.Close()
		defer mw.Close()
		_ = mw.WriteField("api_key", h.apiKey)
		_ = mw.WriteField("timestamp", timestamp)
		_ = mw.WriteField("signature", signature)
		_ = mw.WriteField("folder", folder)
		part, err := mw.CreateFormFile("file", "imagen")
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
		}
	}()

	endpoint := fmt.Sprintf("%s/%s/image/upload", cloudinaryBaseURL, h.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return "", "", fmt.Errorf("media: crear request de subida: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("media: subir imagen: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("media: leer respuesta de subida: %w", err)
	}

	var out cloudinaryUploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", "", fmt.Errorf("media: respuesta de subida inválida (HTTP %d): %w", resp.StatusCode, err)
	}
	if out.Error != nil {
		return "", "", fmt.Errorf("media: cloudinary rechazó la subida: %s", out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || out.SecureURL == "" {
		return "", "", fmt.Errorf("media: subida fallida (HTTP %d)", resp.StatusCode)
	}
	return out.SecureURL, out.PublicID, nil
}

// Destroy elimina la imagen remota identificada por publicID.
func (h *CloudinaryHost) Destroy(ctx context.Context, publicID string) error {
	if h.cloudName == "" || h.apiKey == "" || h.apiSecret == "" {
		return fmt.Errorf("media: credenciales de cloudinary no configuradas")
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := h.sign(map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	})

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("api_key", h.apiKey)
	form.Set("timestamp", timestamp)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/image/destroy", cloudinaryBaseURL, h.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("media: crear request de borrado: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("media: borrar imagen remota: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("media: leer respuesta de borrado: %w", err)
	}

	var out cloudinaryDestroyResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("media: respuesta de borrado inválida (HTTP %d): %w", resp.StatusCode, err)
	}
	if out.Error != nil {
		return fmt.Errorf("media: cloudinary rechazó el borrado: %s", out.Error.Message)
	}
	// "not found" también cuenta como éxito: el objetivo es que el archivo ya no exista.
	if out.Result != "ok" && out.Result != "not found" {
		return fmt.Errorf("media: borrado remoto fallido: %s", out.Result)
	}
	return nil
}
