package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"panel/internal/audit"
	"panel/internal/daemon"
	keyservice "panel/internal/daemonkey/service"
	keystore "panel/internal/daemonkey/store"
	jwttoken "panel/internal/jwt_token"
	"panel/internal/platform/middleware"
	servermodels "panel/internal/server/models"
	serverstore "panel/internal/server/store"
	"panel/internal/subuser/models"
	"panel/internal/subuser/service"
	"panel/internal/subuser/store"
	permissionstore "panel/internal/subuser/store/permission"
	subuserstore "panel/internal/subuser/store/subuser"
	"panel/pkg/platform/httputil"
)

// fakeDaemon records key revocations and answers with a configurable status.
type fakeDaemon struct {
	mu      sync.Mutex
	status  int
	revoked []string
	token   string
}

func (d *fakeDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.token = r.Header.Get("X-Access-Token")
	if r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/v1/keys/") {
		d.revoked = append(d.revoked, strings.TrimPrefix(r.URL.Path, "/v1/keys/"))
	}
	w.WriteHeader(d.status)
}

func (d *fakeDaemon) setStatus(status int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
}

func (d *fakeDaemon) revocations() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.revoked...)
}

type HandlerSuite struct {
	suite.Suite
	daemon      *fakeDaemon
	daemonSrv   *httptest.Server
	perms       *permissionstore.InMemory
	sink        *audit.MemorySink
	router      chi.Router
	jwt         *jwttoken.JWTService
	serverUUID  uuid.UUID
	ownerToken  string
	adminToken  string
	othersToken string
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func nodeAt(rawURL string, id int64) servermodels.Node {
	u, _ := url.Parse(rawURL)
	host, port, _ := net.SplitHostPort(u.Host)
	p, _ := strconv.Atoi(port)
	return servermodels.Node{ID: id, Scheme: "http", FQDN: host, DaemonListen: p, DaemonSecret: "node-secret"}
}

func (s *HandlerSuite) SetupTest() {
	s.daemon = &fakeDaemon{status: http.StatusNoContent}
	s.daemonSrv = httptest.NewServer(s.daemon)

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	s.serverUUID = uuid.New()
	servers := serverstore.NewInMemory()
	servers.AddNode(nodeAt(s.daemonSrv.URL, 3))
	servers.AddNode(nodeAt(closedURL, 4))
	servers.AddServer(servermodels.Server{ID: 10, UUID: s.serverUUID, OwnerID: 1, NodeID: 3, Name: "survival"})
	servers.AddServer(servermodels.Server{ID: 11, UUID: uuid.New(), OwnerID: 1, NodeID: 4, Name: "creative"})

	subusers := subuserstore.NewInMemory(servers)
	subusers.Add(models.Subuser{ID: 1, UserID: 2, ServerID: 10})
	subusers.Add(models.Subuser{ID: 5, UserID: 2, ServerID: 11})

	s.perms = permissionstore.NewInMemory()
	s.Require().NoError(s.perms.InsertMany(context.Background(), 1, []string{"file.read"}))
	s.Require().NoError(s.perms.InsertMany(context.Background(), 5, []string{"file.read"}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	keys, err := keyservice.New(keystore.NewInMemory(), servers)
	s.Require().NoError(err)
	creator, err := service.NewPermissionService(s.perms, nil, nil)
	s.Require().NoError(err)

	s.sink = audit.NewMemorySink()
	svc, err := service.New(subusers, s.perms, creator, keys,
		daemon.NewRepository(servers, daemon.WithTimeout(2*time.Second)),
		store.NewMemoryTx(s.perms),
		service.WithLogger(logger),
		service.WithAuditPublisher(audit.NewPublisher(s.sink)),
	)
	s.Require().NoError(err)

	s.jwt = jwttoken.NewJWTService("test-key", "panel")
	s.ownerToken = s.token(1, false)
	s.adminToken = s.token(99, true)
	s.othersToken = s.token(7, false)

	s.router = chi.NewRouter()
	s.router.Use(middleware.RequestID)
	New(svc, logger, jwttoken.NewMiddlewareValidator(s.jwt)).Register(s.router)
}

func (s *HandlerSuite) TearDownTest() {
	s.daemonSrv.Close()
}

func (s *HandlerSuite) token(userID int64, admin bool) string {
	tok, err := s.jwt.GenerateAccessToken(userID, admin, time.Hour)
	s.Require().NoError(err)
	return tok
}

func (s *HandlerSuite) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) permissionsOf(id int64) []string {
	names, err := s.perms.ListBySubuser(context.Background(), id)
	s.Require().NoError(err)
	return names
}

func (s *HandlerSuite) TestUpdateReplacesPermissionsAndRevokesKey() {
	rec := s.do(http.MethodPatch, "/api/client/servers/10/users/1", s.ownerToken,
		`{"permissions":["control.console","file.update","control.console"]}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var details models.SubuserDetails
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &details))
	s.Equal([]string{"control.console", "file.update"}, details.Permissions)
	s.Equal([]string{"control.console", "file.update"}, s.permissionsOf(1))

	revoked := s.daemon.revocations()
	s.Require().Len(revoked, 1)
	s.True(strings.HasPrefix(revoked[0], "i_"))
	s.Equal("node-secret", s.daemon.token)

	events := s.sink.Events()
	s.Require().Len(events, 1)
	s.Equal(audit.ActionSubuserPermissionsUpdated, events[0].Action)
	s.Equal(int64(1), events[0].ActorID)
}

func (s *HandlerSuite) TestUpdateAcceptsServerUUID() {
	rec := s.do(http.MethodPatch, "/api/client/servers/"+s.serverUUID.String()+"/users/1", s.ownerToken, `{"permissions":[]}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Empty(s.permissionsOf(1))
}

func (s *HandlerSuite) TestDaemonErrorRollsBack() {
	s.daemon.setStatus(http.StatusInternalServerError)

	rec := s.do(http.MethodPatch, "/api/client/servers/10/users/1", s.ownerToken, `{"permissions":["control.console"]}`)
	s.Equal(http.StatusBadGateway, rec.Code)

	var body httputil.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("daemon connection failed, code: 500", body.Description)
	s.Equal([]string{"file.read"}, s.permissionsOf(1))
}

func (s *HandlerSuite) TestDaemonUnreachableRollsBack() {
	rec := s.do(http.MethodPatch, "/api/client/servers/11/users/5", s.ownerToken, `{"permissions":["control.console"]}`)
	s.Equal(http.StatusBadGateway, rec.Code)

	var body httputil.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("daemon connection failed, code: E_CONN_REFUSED", body.Description)
	s.Equal("E_CONN_REFUSED", body.Code)
	s.Equal([]string{"file.read"}, s.permissionsOf(5))

	events := s.sink.Events()
	s.Require().Len(events, 1)
	s.Equal(audit.ActionDaemonConnectionFailed, events[0].Action)
}

func (s *HandlerSuite) TestInvalidPermissionIsRejected() {
	rec := s.do(http.MethodPatch, "/api/client/servers/10/users/1", s.ownerToken, `{"permissions":["server.nuke"]}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "server.nuke is not a valid permission")
	s.Equal([]string{"file.read"}, s.permissionsOf(1))
	s.Empty(s.daemon.revocations())
}

func (s *HandlerSuite) TestRequestValidation() {
	s.Run("missing permissions field", func() {
		rec := s.do(http.MethodPatch, "/api/client/servers/10/users/1", s.ownerToken, `{}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
	s.Run("malformed body", func() {
		rec := s.do(http.MethodPatch, "/api/client/servers/10/users/1", s.ownerToken, `{"permissions":`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
	s.Run("non-numeric subuser", func() {
		rec := s.do(http.MethodGet, "/api/client/servers/10/users/abc", s.ownerToken, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestAuthorization() {
	s.Run("no token", func() {
		rec := s.do(http.MethodGet, "/api/client/servers/10/users/1", "", "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
	s.Run("not the owner", func() {
		rec := s.do(http.MethodPatch, "/api/client/servers/10/users/1", s.othersToken, `{"permissions":[]}`)
		s.Equal(http.StatusForbidden, rec.Code)
		s.Equal([]string{"file.read"}, s.permissionsOf(1))
	})
	s.Run("root admin", func() {
		rec := s.do(http.MethodGet, "/api/client/servers/10/users/1", s.adminToken, "")
		s.Equal(http.StatusOK, rec.Code)
	})
	s.Run("subuser of another server", func() {
		rec := s.do(http.MethodGet, "/api/client/servers/11/users/1", s.ownerToken, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
	s.Run("unknown subuser", func() {
		rec := s.do(http.MethodGet, "/api/client/servers/10/users/404", s.ownerToken, "")
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), `"error_description":"subuser not found"`)
	})
}

func (s *HandlerSuite) TestGet() {
	rec := s.do(http.MethodGet, "/api/client/servers/10/users/1", s.ownerToken, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var details models.SubuserDetails
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &details))
	s.Equal(int64(2), details.Subuser.UserID)
	s.Equal([]string{"file.read"}, details.Permissions)
}
