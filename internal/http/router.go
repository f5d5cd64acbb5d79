package http

import (
	"net/http"
	"strings"
	"time"

	"jobboard/internal/domain/user"
	"jobboard/internal/http/handlers"
	"jobboard/internal/http/metrics"
	httpmw "jobboard/internal/http/middleware"
	"jobboard/internal/observability"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	Media              http.Handler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	Logger             *observability.Logger
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

// Uploads ride the same pipe as JSON bodies, so the limit covers a resume.
const maxBodyBytes = 10 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

// normalize drops the trailing slash so /register/ and /register match alike.
func normalize(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := normalize(req.URL.Path)

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.Metrics.Handler().ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodPost && path == "/logout":
			r.deps.AuthHandler.Logout(w, req)
			return
		case req.Method == http.MethodPost && path == "/refresh":
			r.deps.AuthHandler.Refresh(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
			r.deps.JobHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(req.URL.Path, "/media/"):
			r.deps.Media.ServeHTTP(w, req)
			return
		}

		if path == "/user" || path == "/apply" || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/admin") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := normalize(req.URL.Path)
	adminOnly := httpmw.RequireRole(user.RoleCompany, user.RoleSuperuser)

	switch {
	case req.Method == http.MethodGet && path == "/user":
		r.deps.AuthHandler.Me(w, req)
		return
	case req.Method == http.MethodPost && path == "/apply":
		r.deps.ApplicationHandler.Apply(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/applications/"):
		r.deps.ApplicationHandler.ListForUser(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/jobs":
		adminOnly(http.HandlerFunc(r.deps.JobHandler.AdminList)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/admin/jobs":
		adminOnly(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/jobs/"):
		adminOnly(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/applications":
		adminOnly(http.HandlerFunc(r.deps.ApplicationHandler.AdminList)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/admin/applications/") && strings.HasSuffix(path, "/status"):
		adminOnly(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/applications/"):
		httpmw.RequireRole(user.RoleSuperuser)(http.HandlerFunc(r.deps.ApplicationHandler.Delete)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
