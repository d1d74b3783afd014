package econet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anicoll/econet-integration/internal/pkg/config"
)

// newCloudStub serves the minimal econet24 login flow plus the two parameter
// endpoints. Behaviour is tweaked per test through the fields.
type cloudStub struct {
	*httptest.Server
	loginOK      bool
	deviceParams string
	editable     string
	userDevices  string
	paramsStatus int
}

func newCloudStub(t *testing.T) *cloudStub {
	t.Helper()
	stub := &cloudStub{
		loginOK:      true,
		deviceParams: `{"uid":"ABC12345XY","curr":{"TempCWU":48.5},"currUnits":{"TempCWU":"°C"},"wifiQuality":90,"wifiStrength":-52}`,
		editable:     `{"data":{},"informationParams":{}}`,
		userDevices:  `{"devices":["ABC12345XY"]}`,
		paramsStatus: http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "test-csrf", Path: "/"})
			w.WriteHeader(http.StatusOK)
		case http.MethodPost:
			assert.Equal(t, "test-csrf", r.Header.Get("X-CSRFToken"))
			assert.Equal(t, "test-csrf", r.FormValue("csrfmiddlewaretoken"))
			if !stub.loginOK {
				w.WriteHeader(http.StatusOK) // Django re-renders the login page
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "session-1", Path: "/"})
			http.Redirect(w, r, "/view/device/ABC12345XY/main/", http.StatusFound)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/view/device/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/service/getUserDevices", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stub.userDevices))
	})
	mux.HandleFunc("/service/getDeviceParams", func(w http.ResponseWriter, r *http.Request) {
		if stub.paramsStatus != http.StatusOK {
			w.WriteHeader(stub.paramsStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stub.deviceParams))
	})
	mux.HandleFunc("/service/getDeviceEditableParams", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(stub.editable))
	})

	stub.Server = httptest.NewServer(mux)
	t.Cleanup(stub.Close)
	return stub
}

func newTestClient(t *testing.T, stub *cloudStub) *service {
	t.Helper()
	svc, err := New(&config.EconetConfig{
		Username: "user@example.com",
		Password: "hunter2",
		ApiBase:  stub.URL,
	})
	require.NoError(t, err)
	return svc
}

func TestLoginSuccess(t *testing.T) {
	stub := newCloudStub(t)
	svc := newTestClient(t, stub)

	err := svc.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC12345XY"}, svc.Devices())
}

func TestLoginRefreshesDeviceList(t *testing.T) {
	stub := newCloudStub(t)
	stub.userDevices = `{"devices":["ABC12345XY","DEF67890ZZ"]}`
	svc := newTestClient(t, stub)

	require.NoError(t, svc.Login(context.Background()))
	assert.Equal(t, []string{"ABC12345XY", "DEF67890ZZ"}, svc.Devices())
}

func TestLoginRejected(t *testing.T) {
	stub := newCloudStub(t)
	stub.loginOK = false
	svc := newTestClient(t, stub)

	err := svc.Login(context.Background())
	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestDeviceParams(t *testing.T) {
	stub := newCloudStub(t)
	svc := newTestClient(t, stub)
	require.NoError(t, svc.Login(context.Background()))

	params, err := svc.DeviceParams(context.Background(), "ABC12345XY")
	require.NoError(t, err)
	assert.Equal(t, 48.5, params.Curr["TempCWU"])
	assert.Equal(t, "°C", params.CurrUnits["TempCWU"])
	assert.Equal(t, 90.0, params.WifiQuality)
	assert.Equal(t, -52.0, params.WifiStrength)
}

func TestDeviceParamsBeforeLogin(t *testing.T) {
	stub := newCloudStub(t)
	svc := newTestClient(t, stub)

	_, err := svc.DeviceParams(context.Background(), "ABC12345XY")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestDeviceParamsSessionExpired(t *testing.T) {
	stub := newCloudStub(t)
	svc := newTestClient(t, stub)
	require.NoError(t, svc.Login(context.Background()))

	stub.paramsStatus = http.StatusUnauthorized
	_, err := svc.DeviceParams(context.Background(), "ABC12345XY")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestEditableParams(t *testing.T) {
	stub := newCloudStub(t)
	stub.editable = `{
		"data": {"113": {"name": "HDWTSetPoint", "value": 48}},
		"informationParams": {"21": [true, [["55.2", "0"]]]}
	}`
	svc := newTestClient(t, stub)
	require.NoError(t, svc.Login(context.Background()))

	params, err := svc.EditableParams(context.Background(), "ABC12345XY")
	require.NoError(t, err)
	require.Contains(t, params.Data, "113")
	assert.Equal(t, "HDWTSetPoint", params.Data["113"].Name)
	assert.Equal(t, 48.0, params.Data["113"].Value)
	assert.Contains(t, params.InformationParams, "21")
}

func TestSessionErrorsAreDistinguishable(t *testing.T) {
	assert.False(t, errors.Is(ErrLoginFailed, ErrSessionExpired))
	assert.False(t, errors.Is(ErrSessionExpired, ErrLoginFailed))
}
