package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/quaverlabs/brainzgap/pkg/errors"
	"github.com/quaverlabs/brainzgap/pkg/logging"
)

// maxErrorBody bounds how much of an error response is carried into
// error messages. Wikimedia error pages can be full HTML documents.
const maxErrorBody = 512

// DecodeResponse decodes a JSON response into the target structure.
func DecodeResponse(source string, resp *http.Response, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), maxErrorBody),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", source, err)
	}

	return nil
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
