package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
}

// RequestArgs параметры запроса. Если задан JSON, он сериализуется в тело запроса вместо Body, а
// Content-Type выставляется в application/json.
type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
	JSON   any
}

func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
	}

	body := args.Body
	if args.JSON != nil {
		raw, err := json.Marshal(args.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %s", err.Error())
		}
		body = bytes.NewReader(raw)
		options.headers["Content-Type"] = "application/json"
	}

	// опции применяются последними и могут переопределить заголовки по умолчанию.
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()

	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}
