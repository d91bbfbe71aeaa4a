// dao/resource_dao.go
package dao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
)

// ResourceDAO is the single upstream client for the record backend. All
// doctypes share one REST surface: /api/resource/{doctype}. There are no
// retries; a failed fetch surfaces immediately and the caller keeps its
// previous state.
type ResourceDAO struct {
	BaseURL string
	Client  *http.Client
}

func NewResourceDAO(baseURL string, timeout time.Duration) *ResourceDAO {
	return &ResourceDAO{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

type listEnvelope struct {
	Data []model.Record `json:"data"`
}

func (dao *ResourceDAO) resourceURL(doctype model.Doctype, id string, query url.Values) string {
	u := fmt.Sprintf("%s/api/resource/%s", dao.BaseURL, doctype)
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (dao *ResourceDAO) do(ctx context.Context, method, rawURL string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := dao.Client.Do(req)
	if err != nil {
		logger.Error("Backend request failed",
			zap.String("method", method),
			zap.String("url", rawURL),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", gateway_errors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("Backend request",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode >= 400 {
		return nil, backendError(resp.StatusCode, payload)
	}
	return payload, nil
}

// backendError maps an upstream failure into the error taxonomy. A
// structured {error} body is surfaced verbatim; anything else falls back
// to the generic sentinel for its class.
func backendError(status int, payload []byte) error {
	if status == http.StatusNotFound {
		return gateway_errors.ErrRecordNotFound
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
		return &gateway_errors.BackendError{StatusCode: status, Message: body.Error}
	}

	if status >= 500 {
		return gateway_errors.ErrInternalServer
	}
	return &gateway_errors.BackendError{StatusCode: status}
}

// List fetches the records of a doctype matching the scope query. The
// backend wraps list results in a data envelope.
func (dao *ResourceDAO) List(ctx context.Context, doctype model.Doctype, query url.Values) ([]model.Record, error) {
	payload, err := dao.do(ctx, http.MethodGet, dao.resourceURL(doctype, "", query), nil)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return envelope.Data, nil
}

// Get fetches a single record by id.
func (dao *ResourceDAO) Get(ctx context.Context, doctype model.Doctype, id string, query url.Values) (model.Record, error) {
	payload, err := dao.do(ctx, http.MethodGet, dao.resourceURL(doctype, id, query), nil)
	if err != nil {
		return nil, err
	}

	var record model.Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return record, nil
}

// Create posts a new record and returns the stored version. The query
// carries the tenant scope the backend requires on writes.
func (dao *ResourceDAO) Create(ctx context.Context, doctype model.Doctype, record model.Record, query url.Values) (model.Record, error) {
	payload, err := dao.do(ctx, http.MethodPost, dao.resourceURL(doctype, "", query), record)
	if err != nil {
		return nil, err
	}

	var stored model.Record
	if err := json.Unmarshal(payload, &stored); err != nil {
		// Some doctypes return an empty body on create; fall back to the
		// submitted record.
		return record, nil
	}
	return stored, nil
}

// Update replaces a record by id and returns the stored version.
func (dao *ResourceDAO) Update(ctx context.Context, doctype model.Doctype, id string, record model.Record, query url.Values) (model.Record, error) {
	payload, err := dao.do(ctx, http.MethodPut, dao.resourceURL(doctype, id, query), record)
	if err != nil {
		return nil, err
	}

	var stored model.Record
	if err := json.Unmarshal(payload, &stored); err != nil {
		return record, nil
	}
	return stored, nil
}

// Delete removes a record by id within the query's tenant scope.
func (dao *ResourceDAO) Delete(ctx context.Context, doctype model.Doctype, id string, query url.Values) error {
	_, err := dao.do(ctx, http.MethodDelete, dao.resourceURL(doctype, id, query), nil)
	return err
}
