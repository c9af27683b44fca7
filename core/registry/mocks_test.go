package registry

import (
	"context"

	"newswire-collector/core/domain"
	"newswire-collector/core/interfaces"
)

// stubPlugin is a Plugin implementation for registry tests
type stubPlugin struct {
	processFunc func(ctx context.Context, desc domain.FeedDescriptor, client interfaces.HTTPClient) ([]domain.ArticleRecord, error)
}

func (p *stubPlugin) Process(ctx context.Context, desc domain.FeedDescriptor, client interfaces.HTTPClient) ([]domain.ArticleRecord, error) {
	if p.processFunc != nil {
		return p.processFunc(ctx, desc, client)
	}
	return nil, nil
}

// stubSource is a FeedSource implementation backed by a fixed slice
type stubSource struct {
	rows []domain.FeedDescriptor
	err  error
}

func (s *stubSource) Load(_ context.Context) ([]domain.FeedDescriptor, error) {
	return s.rows, s.err
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
