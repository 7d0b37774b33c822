package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/infrastructure/storage"
)

func TestUpload_EscribeYDevuelveURL(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := storage.New(fs, "http://localhost:8080/files/")

	u, err := st.Upload(context.Background(), "tax-invoices", "NF 1.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/tax-invoices/NF%201.pdf", u)

	data, err := afero.ReadFile(fs, "/tax-invoices/NF 1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(data))
}

func TestUpload_NoSaleDelBucket(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := storage.New(fs, "/files")

	u, err := st.Upload(context.Background(), "product-images", "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/files/product-images/etc/passwd", u)

	ok, err := afero.Exists(fs, "/product-images/etc/passwd")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpload_BucketInvalido(t *testing.T) {
	st := storage.New(afero.NewMemMapFs(), "/files")

	_, err := st.Upload(context.Background(), "../x", "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = st.Upload(context.Background(), "product-images", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
