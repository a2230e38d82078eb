package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/detailing-dashboard/internal/application/analytics"
	"github.com/jhoicas/detailing-dashboard/internal/application/auth"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
	"github.com/jhoicas/detailing-dashboard/internal/application/validation"
	"github.com/jhoicas/detailing-dashboard/internal/infrastructure/api"
	"github.com/jhoicas/detailing-dashboard/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/detailing-dashboard/internal/interfaces/http"
	"github.com/jhoicas/detailing-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// API del taller simulada
// ──────────────────────────────────────────────────────────────────────────────

const trabajoJSON = `{
	"_id": "t1",
	"vehiculo": {"_id": "v1", "marca": "Ford", "modelo": "Focus", "patente": "ABC123",
		"cliente": {"_id": "c1", "nombre": "Juan", "apellido": "Pérez", "dni": "30111222", "email": "juan@mail.com", "tipo": "Cliente"}},
	"estado": "%s",
	"tareas": [{"tarea": "ta1", "precio_al_momento": 1500}],
	"productos_usados": [],
	"precio_total": 1500
}`

type upstream struct {
	mu      sync.Mutex
	estado  string
	patches []string
	tokens  []string
}

func (u *upstream) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /persona/login", func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secreto1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"credenciales inválidas"}`)
			return
		}
		_, _ = io.WriteString(w, `{"idToken":"api-token","localId":"uid-ana","expiresIn":"3600"}`)
	})
	mux.HandleFunc("GET /persona", func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		_, _ = io.WriteString(w, `{"data":[
			{"_id":"p1","nombre":"Ana","apellido":"Gómez","dni":"30111333","email":"ana@taller.com","tipo":"Empleado","firebaseUid":"uid-ana"}
		]}`)
	})
	mux.HandleFunc("GET /trabajo", func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		_, _ = io.WriteString(w, "["+u.trabajo()+"]")
	})
	mux.HandleFunc("GET /trabajo/t1", func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		_, _ = io.WriteString(w, u.trabajo())
	})
	mux.HandleFunc("PATCH /trabajo/t1", func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		raw, _ := io.ReadAll(r.Body)
		var body map[string]string
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("PATCH con cuerpo inválido: %s", raw)
		}
		u.mu.Lock()
		u.patches = append(u.patches, string(raw))
		u.estado = body["estado"]
		u.mu.Unlock()
		_, _ = io.WriteString(w, u.trabajo())
	})
	return mux
}

func (u *upstream) record(r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tokens = append(u.tokens, r.Header.Get("Authorization"))
}

func (u *upstream) trabajo() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return strings.Replace(trabajoJSON, "%s", u.estado, 1)
}

// buildRouterApp arma la aplicación completa contra la API simulada.
func buildRouterApp(t *testing.T) (*fiber.App, *upstream) {
	t.Helper()
	up := &upstream{estado: "Pendiente"}
	srv := httptest.NewServer(up.handler(t))
	t.Cleanup(srv.Close)

	log := logger.Nop()
	client := api.NewClient(srv.URL, 0, log)
	authRepo := api.NewAuthRepository(client)
	personaRepo := api.NewPersonaRepository(client)
	vehiculoRepo := api.NewVehiculoRepository(client)
	productoRepo := api.NewProductoRepository(client)
	tareaRepo := api.NewTareaRepository(client)
	trabajoRepo := api.NewTrabajoRepository(client)
	stores := store.NewRegistry()
	v := validation.New()
	vehiculoUC := usecase.NewVehiculoUseCase(vehiculoRepo, v)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(authRepo, personaRepo, memory.NewSessionStorage(), stores, v,
			auth.JWTConfig{Secret: "router-test-secret", ExpMinutes: 60, Issuer: "detailing-test"}, log),
		Stores:      stores,
		Navegacion:  usecase.NewNavegacionService(),
		DashboardUC: appanalytics.NewDashboardUseCase(personaRepo, trabajoRepo, productoRepo, log),
		PersonaUC:   usecase.NewPersonaUseCase(personaRepo),
		ClienteUC:   usecase.NewClienteUseCase(personaRepo, v),
		ProveedorUC: usecase.NewProveedorUseCase(personaRepo, authRepo, v, "proveedor123"),
		VehiculoUC:  vehiculoUC,
		ProductoUC:  usecase.NewProductoUseCase(productoRepo, v),
		TareaUC:     usecase.NewTareaUseCase(tareaRepo, v),
		TrabajoUC: usecase.NewTrabajoUseCase(trabajoRepo, productoRepo, vehiculoRepo, personaRepo,
			memory.NewTransicionRepository(), nil, v, log),
		BorradorUC: usecase.NewBorradorUseCase(personaRepo, tareaRepo, productoRepo, vehiculoUC, trabajoRepo, v, log),
	})
	return app, up
}

func call(t *testing.T, app *fiber.App, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"ana@taller.com","password":"secreto1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, "login debe responder 200: %v", body)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_RutasProtegidasSinToken(t *testing.T) {
	app, _ := buildRouterApp(t)
	for _, path := range []string{"/api/dashboard", "/api/trabajos", "/api/auth/me", "/api/navegacion"} {
		resp, _ := call(t, app, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRouter_LoginCredencialesInvalidas(t *testing.T) {
	app, _ := buildRouterApp(t)
	resp, body := call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"ana@taller.com","password":"otra-clave"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestRouter_LoginValidaAntesDeLlamarALaAPI(t *testing.T) {
	app, up := buildRouterApp(t)
	resp, body := call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"no-es-email","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Empty(t, up.tokens, "no debe haber llamadas a la API")
}

func TestRouter_EmpleadoNoVeProveedores(t *testing.T) {
	app, _ := buildRouterApp(t)
	tok := login(t, app)

	resp, body := call(t, app, http.MethodGet, "/api/navegacion", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	secciones, _ := body["secciones"].([]any)
	var nombres []string
	for _, s := range secciones {
		nombres = append(nombres, s.(map[string]any)["nombre"].(string))
	}
	assert.Contains(t, nombres, "Trabajos")
	assert.NotContains(t, nombres, "Proveedores")
	assert.NotContains(t, nombres, "Configuración")

	resp, _ = call(t, app, http.MethodGet, "/api/proveedores", tok, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "empleado no debe entrar a proveedores")

	resp, _ = call(t, app, http.MethodGet, "/api/personas", tok, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "personas es sólo para administradores")
}

func TestRouter_CambioDeEstadoConConfirmacion(t *testing.T) {
	app, up := buildRouterApp(t)
	tok := login(t, app)

	resp, body := call(t, app, http.MethodGet, "/api/trabajos", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])

	resp, body = call(t, app, http.MethodPost, "/api/trabajos/t1/estado", tok, `{"estado":"En Proceso"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, "%v", body)
	assert.Equal(t, true, body["cambio"])
	conf := body["confirmacion"].(map[string]any)
	assert.Equal(t, `¿Cambiar estado de "Pendiente" a "En Proceso"?`, conf["mensaje"])
	assert.Empty(t, up.patches, "pedir el cambio no debe tocar la API")

	cid := conf["id"].(string)
	resp, body = call(t, app, http.MethodPost, "/api/trabajos/confirmaciones/"+cid, tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, "%v", body)
	assert.Equal(t, "En Proceso", body["estado"])
	require.Len(t, up.patches, 1)
	assert.JSONEq(t, `{"estado":"En Proceso"}`, up.patches[0], "el PATCH lleva sólo el estado")

	// La confirmación es de un solo uso.
	resp, body = call(t, app, http.MethodPost, "/api/trabajos/confirmaciones/"+cid, tok, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CONFIRMATION_NOT_FOUND", body["code"])

	req := httptest.NewRequest(http.MethodGet, "/api/trabajos/t1/historial", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	hresp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer hresp.Body.Close()
	var historial []map[string]any
	require.NoError(t, json.NewDecoder(hresp.Body).Decode(&historial))
	require.Len(t, historial, 1)
	assert.Equal(t, "Pendiente", historial[0]["desde"])
	assert.Equal(t, "En Proceso", historial[0]["hacia"])
	assert.Equal(t, "p1", historial[0]["persona_id"])

	// La primera llamada es el login, todavía sin token.
	for _, h := range up.tokens[1:] {
		assert.Equal(t, "Bearer api-token", h, "cada llamada a la API lleva el token de la sesión")
	}
}

func TestRouter_RetrocesoRechazadoSinLlamarALaAPI(t *testing.T) {
	app, up := buildRouterApp(t)
	up.estado = "Terminado"
	tok := login(t, app)

	resp, body := call(t, app, http.MethodPost, "/api/trabajos/t1/estado", tok, `{"estado":"Pendiente"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", body["code"])
	assert.Equal(t, "No se puede retroceder el estado de un trabajo", body["message"])
	assert.Empty(t, up.patches)
}

func TestRouter_LogoutInvalidaLaSesion(t *testing.T) {
	app, _ := buildRouterApp(t)
	tok := login(t, app)

	resp, body := call(t, app, http.MethodGet, "/api/auth/me", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ana", body["nombre"])

	resp, body = call(t, app, http.MethodPost, "/api/auth/logout", tok, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", body["redirect"])

	resp, body = call(t, app, http.MethodGet, "/api/auth/me", tok, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", body["code"])
}
