package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kratvil/HES-HotelService/internal/domain"
	settingsRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/settings"
)

type fakeSettingsRepo struct {
	values map[string]string
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string]string)}
}

func (f *fakeSettingsRepo) Get(_ context.Context, name string) (string, error) {
	value, ok := f.values[name]
	if !ok {
		return "", settingsRepo.ErrSettingNotFound
	}
	return value, nil
}

func (f *fakeSettingsRepo) Set(_ context.Context, name, value string) error {
	f.values[name] = value
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetTax_DefaultWhenUnset(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), nopLogger{})

	resp, err := svc.GetTax(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTaxPercent, resp.TaxPercent)
}

func TestGetTax_ReturnsStoredValue(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.values[domain.TaxSettingKey] = "15"
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetTax(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 15, resp.TaxPercent)
}

func TestGetTax_CorruptStoredValue(t *testing.T) {
	tests := []string{"abc", "-1", "101", ""}

	for _, raw := range tests {
		t.Run("value "+raw, func(t *testing.T) {
			repo := newFakeSettingsRepo()
			repo.values[domain.TaxSettingKey] = raw
			svc := NewService(repo, nopLogger{})

			_, err := svc.GetTax(context.Background())
			assert.ErrorIs(t, err, ErrInternal)
		})
	}
}

func TestSetTax(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.SetTax(context.Background(), &SetTaxRequest{TaxPercent: 21})

	require.NoError(t, err)
	assert.Equal(t, 21, resp.TaxPercent)
	assert.Equal(t, "21", repo.values[domain.TaxSettingKey])
}

func TestSetTax_Boundaries(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), nopLogger{})

	for _, percent := range []int{0, 100} {
		_, err := svc.SetTax(context.Background(), &SetTaxRequest{TaxPercent: percent})
		assert.NoError(t, err)
	}

	for _, percent := range []int{-1, 101} {
		_, err := svc.SetTax(context.Background(), &SetTaxRequest{TaxPercent: percent})
		assert.ErrorIs(t, err, ErrTaxOutOfRange)
	}
}
