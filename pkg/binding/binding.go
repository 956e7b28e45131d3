// Package binding decodes request bodies into DTOs. Clinic forms submit
// urlencoded fields; API clients send JSON. Both land in the same struct.
package binding

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/schema"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func Bind(r *http.Request, dst interface{}) error {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return err
		}
		return formDecoder.Decode(dst, r.PostForm)
	}
	return json.NewDecoder(r.Body).Decode(dst)
}
