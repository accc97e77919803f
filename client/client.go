// Package client talks to the exchange's trading API. Requests are signed
// with an HS256 JWT carrying the access key, a uuid nonce and a SHA512 hash
// of the query string.
package client

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

const (
	apiURL     = "https://api.surbit.com"
	apiVersion = "v2"
)

type Client struct {
	*http.Client
	AccessKey string
	SecretKey string
	URL       string // overrides apiURL when non-empty
}

type claims struct {
	AccessKey    string    `json:"access_key"`
	Nonce        uuid.UUID `json:"nonce"`
	QueryHash    string    `json:"query_hash,omitempty"`
	QueryHashAlg string    `json:"query_hash_alg,omitempty"`
	jwt.StandardClaims
}

// call signs and sends one API request. params is encoded with `url` struct
// tags; it travels in the query string on GET and as a JSON body otherwise,
// and its encoded form is hashed into the token either way. The response is
// decoded into v.
func (c *Client) call(method, path string, params interface{}, v interface{}) error {
	cl := claims{AccessKey: c.AccessKey, Nonce: uuid.NewV4()}

	url := c.base() + path
	var body []byte

	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return err
		}
		encodedQuery := values.Encode()

		hash := sha512.Sum512([]byte(encodedQuery))
		cl.QueryHash = hex.EncodeToString(hash[:])
		cl.QueryHashAlg = "SHA512"

		if method == http.MethodGet {
			url = url + "?" + encodedQuery
		} else {
			body, err = json.Marshal(params)
			if err != nil {
				return err
			}
		}
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString([]byte(c.SecretKey))
	if err != nil {
		return errors.Wrap(err, "signing request")
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v interface{}) error {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{Status: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil {
			apiErr.Message = string(data)
		}
		return apiErr
	}
	if v == nil {
		return nil
	}

	return json.Unmarshal(data, v)
}

func (c *Client) base() string {
	if c.URL != "" {
		return c.URL + "/" + apiVersion
	}
	return apiURL + "/" + apiVersion
}

// Error is the body the exchange returns on non-2xx responses.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return "exchange: " + e.Message + " (" + e.Code + ")"
}
