package dispatch

import (
	"context"
	"io"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
)

// stubPlugin is a Plugin implementation driven by a function field
type stubPlugin struct {
	processFunc func(ctx context.Context, desc domain.FeedDescriptor, client interfaces.HTTPClient) ([]domain.ArticleRecord, error)
}

func (p *stubPlugin) Process(ctx context.Context, desc domain.FeedDescriptor, client interfaces.HTTPClient) ([]domain.ArticleRecord, error) {
	if p.processFunc != nil {
		return p.processFunc(ctx, desc, client)
	}
	return nil, nil
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
