package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	hashiVersion "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveVersion(t *testing.T, code int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	original := latestAppVersionURL
	latestAppVersionURL = srv.URL + "/advise/releases/latest/VERSION"
	t.Cleanup(func() { latestAppVersionURL = original })
}

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name          string
		buildVersion  string
		latestVersion string
		code          int
		isAvailable   bool
		newVersion    string
		wantErr       require.ErrorAssertionFunc
	}{
		{
			name:          "equal",
			buildVersion:  "1.0.0",
			latestVersion: "1.0.0",
			code:          http.StatusOK,
		},
		{
			name:          "has update",
			buildVersion:  "1.0.0",
			latestVersion: "v1.2.0\n",
			code:          http.StatusOK,
			isAvailable:   true,
			newVersion:    "1.2.0",
		},
		{
			name:          "ahead of latest",
			buildVersion:  "1.2.0",
			latestVersion: "1.0.0",
			code:          http.StatusOK,
		},
		{
			name:          "empty update",
			buildVersion:  "1.0.0",
			latestVersion: "",
			code:          http.StatusOK,
			wantErr:       require.Error,
		},
		{
			name:          "garbage update",
			buildVersion:  "1.0.0",
			latestVersion: "hdfjksdhfhkj",
			code:          http.StatusOK,
			wantErr:       require.Error,
		},
		{
			name:          "server error",
			buildVersion:  "1.0.0",
			latestVersion: "2.0.0",
			code:          http.StatusInternalServerError,
			wantErr:       require.Error,
		},
		{
			name:          "no build version",
			buildVersion:  valueNotProvided,
			latestVersion: "1.0.0",
			code:          http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.wantErr == nil {
				test.wantErr = require.NoError
			}

			original := version
			version = test.buildVersion
			t.Cleanup(func() { version = original })

			serveVersion(t, test.code, test.latestVersion)

			isAvailable, newVersion, err := IsUpdateAvailable(context.Background())
			test.wantErr(t, err)
			assert.Equal(t, test.isAvailable, isAvailable)
			assert.Equal(t, test.newVersion, newVersion)
		})
	}
}

func TestFetchLatestApplicationVersion(t *testing.T) {
	serveVersion(t, http.StatusOK, "1.0.0")

	actual, err := fetchLatestApplicationVersion(context.Background())
	require.NoError(t, err)
	assert.True(t, actual.Equal(hashiVersion.Must(hashiVersion.NewVersion("1.0.0"))))
}

func TestFetchLatestApplicationVersion_Cancelled(t *testing.T) {
	serveVersion(t, http.StatusOK, "1.0.0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetchLatestApplicationVersion(ctx)
	require.Error(t, err)
}
