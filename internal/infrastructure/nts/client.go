package nts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/taxhelper-api/internal/domain"
	"github.com/jhoicas/taxhelper-api/internal/domain/entity"
	"github.com/jhoicas/taxhelper-api/internal/infrastructure/observability"
	pkgnts "github.com/jhoicas/taxhelper-api/pkg/nts"
)

const (
	statusEndpoint   = "/status"
	validateEndpoint = "/validate"

	// validCode valor de "valid" cuando los datos coinciden con el registro.
	validCode = "01"
)

// Client implementa business.RegistryClient sobre la API REST del NTS publicada en odcloud.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient construye el cliente. serviceKey puede venir URL-encoded tal como la entrega
// data.go.kr; se decodifica una vez antes de armar la query.
func NewClient(baseURL, serviceKey string, timeout time.Duration) *Client {
	if decoded, err := url.PathUnescape(serviceKey); err == nil {
		serviceKey = decoded
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Estructuras JSON ──────────────────────────────────────────────────────────

type statusRequest struct {
	BNo []string `json:"b_no"`
}

type statusItem struct {
	BNo       string `json:"b_no"`
	BStt      string `json:"b_stt"`
	BSttCd    string `json:"b_stt_cd"`
	TaxType   string `json:"tax_type"`
	TaxTypeCd string `json:"tax_type_cd"`
	EndDt     string `json:"end_dt"`
	BNm       string `json:"b_nm"`
	BSector   string `json:"b_sector"`
}

type validateBusiness struct {
	BNo     string `json:"b_no"`
	StartDt string `json:"start_dt"`
	PNm     string `json:"p_nm"`
	PNm2    string `json:"p_nm2"`
	BNm     string `json:"b_nm"`
	CorpNo  string `json:"corp_no"`
	BSector string `json:"b_sector"`
	BType   string `json:"b_type"`
	BAdr    string `json:"b_adr"`
}

type validateRequest struct {
	Businesses []validateBusiness `json:"businesses"`
}

type validateItem struct {
	BNo      string      `json:"b_no"`
	Valid    string      `json:"valid"`
	ValidMsg string      `json:"valid_msg"`
	Status   *statusItem `json:"status"`
}

type envelope[T any] struct {
	StatusCode string `json:"status_code"`
	Data       []T    `json:"data"`
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// Status consulta el estado de un número de registro limpio (10 dígitos).
func (c *Client) Status(ctx context.Context, businessNumber string) (*entity.RegistryStatus, error) {
	var env envelope[statusItem]
	if err := c.post(ctx, statusEndpoint, statusRequest{BNo: []string{businessNumber}}, &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("%w: respuesta de /status sin datos", domain.ErrRegistryUnavailable)
	}
	return toRegistryStatus(env.Data[0], businessNumber), nil
}

// Validate chequeo de autenticidad de número, fecha de apertura y representante.
func (c *Client) Validate(ctx context.Context, q entity.RegistryQuery) (*entity.RegistryValidation, error) {
	body := validateRequest{Businesses: []validateBusiness{{
		BNo:     q.BusinessNumber,
		StartDt: q.OpenDate,
		PNm:     q.RepresentativeName,
		BNm:     q.CompanyName,
	}}}
	var env envelope[validateItem]
	if err := c.post(ctx, validateEndpoint, body, &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("%w: respuesta de /validate sin datos", domain.ErrRegistryUnavailable)
	}
	item := env.Data[0]
	res := &entity.RegistryValidation{
		BusinessNumber: q.BusinessNumber,
		Valid:          item.Valid == validCode,
		Message:        item.ValidMsg,
	}
	if item.Status != nil {
		res.Status = toRegistryStatus(*item.Status, q.BusinessNumber)
	}
	return res, nil
}

// post envía body como JSON y decodifica la respuesta en out.
// Errores de red, HTTP no 2xx o JSON inválido se reportan como ErrRegistryUnavailable.
func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		observability.RegistryDuration.WithLabelValues(strings.TrimPrefix(endpoint, "/")).Observe(time.Since(start).Seconds())
		observability.RegistryRequests.WithLabelValues(strings.TrimPrefix(endpoint, "/"), observability.StatusLabel(err)).Inc()
	}()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("nts: serializar petición: %w", err)
	}
	u := c.baseURL + endpoint + "?" + url.Values{"serviceKey": {c.serviceKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("nts: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrRegistryUnavailable, ctx.Err())
		}
		return fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrRegistryUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // max 1 MB
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrRegistryUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrRegistryUnavailable, resp.StatusCode, truncate(string(raw), 200))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: respuesta no es JSON: %v", domain.ErrRegistryUnavailable, err)
	}
	return nil
}

func toRegistryStatus(it statusItem, requested string) *entity.RegistryStatus {
	number := it.BNo
	if number == "" {
		number = requested
	}
	st := &entity.RegistryStatus{
		BusinessNumber: number,
		Registered:     it.TaxType != pkgnts.UnregisteredMessage,
		StatusCode:     it.BSttCd,
		Status:         it.BStt,
		TaxTypeCode:    it.TaxTypeCd,
		TaxType:        it.TaxType,
		CompanyName:    it.BNm,
		Sector:         it.BSector,
		EndDate:        it.EndDt,
	}
	return st
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
