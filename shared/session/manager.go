package session

import (
	"errors"
	"net/http"
	"pgsystem/config"
	"pgsystem/infras/otel"
	"pgsystem/shared/constant"
	"pgsystem/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	LoginPath  = "/login"
	cookiePath = "/"
)

type Manager interface {
	Load(next http.Handler) http.Handler
	RequireUser(next http.Handler) http.Handler
	Flash(w http.ResponseWriter, r *http.Request, category, message string)
	Flashes(w http.ResponseWriter, r *http.Request) []Flash
	Login(w http.ResponseWriter, r *http.Request, username string) error
	Logout(w http.ResponseWriter, r *http.Request) error
}

type managerImpl struct {
	store  Store
	otel   otel.Otel
	name   string
	ttl    int
	secure bool
}

func NewManager(cfg *config.Config, store Store, otel otel.Otel) Manager {
	return &managerImpl{
		store:  store,
		otel:   otel,
		name:   cfg.App.Session.CookieName,
		ttl:    cfg.App.Session.TTLSeconds,
		secure: cfg.App.Session.Secure,
	}
}

// Load attaches the session named by the cookie to the request context. Unknown, expired or
// unreadable sessions leave the request anonymous.
func (m *managerImpl) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "session.middleware")

		sess := &Session{}

		if cookie, err := r.Cookie(m.name); err == nil {
			loaded, err := m.store.Get(ctx, cookie.Value)

			switch {
			case err == nil:
				sess = &loaded
			case errors.Is(err, ErrNotFound):
				log.Debug().Msg("session cookie without stored session")
			default:
				scope.TraceError(err)
				log.Warn().Err(err).Msg("failed to load session, continuing as guest")
			}
		}

		scope.SetAttribute("session.authenticated", sess.Authenticated())
		scope.End()

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
	})
}

// RequireUser sends guests to the login page with a notice.
func (m *managerImpl) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !FromContext(r.Context()).Authenticated() {
			m.Flash(w, r, constant.FlashDanger, failure.UnauthenticatedError.Message)
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// Flash queues a notice for the next rendered page. A notice that cannot be stored is dropped.
func (m *managerImpl) Flash(w http.ResponseWriter, r *http.Request, category, message string) {
	sess := FromContext(r.Context())
	sess.Flashes = append(sess.Flashes, Flash{Category: category, Message: message})

	if err := m.save(w, r, sess); err != nil {
		log.Warn().Err(err).Str("category", category).Msg("failed to store flash message")
	}
}

// Flashes pops every queued notice.
func (m *managerImpl) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	sess := FromContext(r.Context())
	if len(sess.Flashes) == 0 {
		return nil
	}

	flashes := sess.Flashes
	sess.Flashes = nil

	if err := m.save(w, r, sess); err != nil {
		log.Warn().Err(err).Msg("failed to clear flash messages")
	}

	return flashes
}

// Login binds username to a fresh session id. Pending notices carry over.
func (m *managerImpl) Login(w http.ResponseWriter, r *http.Request, username string) error {
	sess := FromContext(r.Context())

	if err := m.store.Destroy(r.Context(), sess.ID); err != nil {
		log.Warn().Err(err).Msg("failed to destroy previous session")
	}

	sess.ID = constant.Empty
	sess.Username = username

	return m.save(w, r, sess)
}

// Logout drops the stored session and expires the cookie. It succeeds without a session.
func (m *managerImpl) Logout(w http.ResponseWriter, r *http.Request) error {
	sess := FromContext(r.Context())

	err := m.store.Destroy(r.Context(), sess.ID)

	*sess = Session{}

	http.SetCookie(w, m.cookie(constant.Empty, -1))

	return err //nolint:wrapcheck
}

func (m *managerImpl) save(w http.ResponseWriter, r *http.Request, sess *Session) error {
	issued := sess.ID == constant.Empty
	if issued {
		sess.ID = uuid.NewString()
	}

	if err := m.store.Save(r.Context(), *sess); err != nil {
		return err //nolint:wrapcheck
	}

	if issued {
		http.SetCookie(w, m.cookie(sess.ID, m.ttl))
	}

	return nil
}

func (m *managerImpl) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     cookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
