package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"pgsystem/infras/otel"
	authDto "pgsystem/internal/domains/auth/model/dto"
	authService "pgsystem/internal/domains/auth/service"
	bookingDto "pgsystem/internal/domains/booking/model/dto"
	bookingService "pgsystem/internal/domains/booking/service"
	dashboardService "pgsystem/internal/domains/dashboard/service"
	roomDto "pgsystem/internal/domains/room/model/dto"
	roomService "pgsystem/internal/domains/room/service"
	userDto "pgsystem/internal/domains/user/model/dto"
	userService "pgsystem/internal/domains/user/service"
	"pgsystem/shared"
	"pgsystem/shared/constant"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/failure"
	"pgsystem/shared/session"
	"pgsystem/shared/timezone"
	"pgsystem/transport/http/view"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathIndex     = "/"
	pathLogin     = session.LoginPath
	pathRegister  = "/register"
	pathDashboard = "/dashboard"
	pathProfile   = "/profile"

	msgGenericError = "Something went wrong, please try again."
)

type Handler struct {
	auth      authService.Auth
	users     userService.User
	rooms     roomService.Room
	bookings  bookingService.Booking
	dashboard dashboardService.Dashboard
	sessions  session.Manager
	view      view.Renderer
	otel      otel.Otel
}

func New(
	auth authService.Auth,
	users userService.User,
	rooms roomService.Room,
	bookings bookingService.Booking,
	dashboard dashboardService.Dashboard,
	sessions session.Manager,
	renderer view.Renderer,
	otel otel.Otel,
) Handler {
	return Handler{
		auth:      auth,
		users:     users,
		rooms:     rooms,
		bookings:  bookings,
		dashboard: dashboard,
		sessions:  sessions,
		view:      renderer,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(handler.sessions.Load)

		routerGroup.Get(pathRegister, handler.RegisterForm)
		routerGroup.Post(pathRegister, handler.Register)
		routerGroup.Get(pathLogin, handler.LoginForm)
		routerGroup.Post(pathLogin, handler.Login)
		routerGroup.Get("/logout", handler.Logout)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.sessions.RequireUser)

			protected.Get(pathIndex, handler.Index)
			protected.Post(pathIndex, handler.Book)
			protected.Get("/cancel/{room_id}", handler.Cancel)
			protected.Get(pathDashboard, handler.Dashboard)
			protected.Get(pathProfile, handler.Profile)
			protected.Post(pathProfile, handler.UpdateProfile)
		})
	})
}

func (handler *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	handler.render(w, r, http.StatusOK, view.PageRegister, "Register", nil)
}

func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".web.Register")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.fail(w, r, failure.BadRequest(err), pathRegister)

		return
	}

	req := authDto.RegisterRequest{}
	req.FromValues(r.PostForm)

	if err := handler.auth.Register(ctx, req); err != nil {
		scope.TraceError(err)
		handler.fail(w, r, err, pathRegister)

		return
	}

	scope.AddEvent("User registered successfully")

	handler.redirect(w, r, pathLogin, constant.FlashSuccess, "Registration successful! Please login.")
}

func (handler *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	handler.render(w, r, http.StatusOK, view.PageLogin, "Login", nil)
}

func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".web.Login")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.fail(w, r, failure.BadRequest(err), pathLogin)

		return
	}

	req := authDto.LoginRequest{}
	req.FromValues(r.PostForm)

	user, err := handler.auth.Authenticate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		handler.fail(w, r, err, pathLogin)

		return
	}

	if err := handler.sessions.Login(w, r, user.Username); err != nil {
		scope.TraceError(err)
		handler.fail(w, r, fmt.Errorf("failed to start session: %w", err), pathLogin)

		return
	}

	scope.AddEvent("User logged in successfully")

	handler.redirect(w, r, pathDashboard, constant.FlashSuccess, "Login successful!")
}

func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := handler.sessions.Logout(w, r); err != nil {
		log.Warn().Err(err).Msg("failed to destroy session on logout")
	}

	handler.redirect(w, r, pathLogin, constant.FlashInfo, "Logged out successfully.")
}

// Index lists the catalog. Filters come from the query string and are kept in pagination links.
func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".web.Index")
	defer scope.End()

	filter := roomDto.CatalogFilter{}
	filter.FromValues(r.URL.Query())

	params := gDto.QueryParams{}
	params.FromValues(r.URL.Query())

	catalog := view.Catalog{Today: timezone.Format(timezone.Now(), constant.BookingDateFormat)}

	res, err := handler.rooms.List(ctx, filter, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		handler.sessions.Flash(w, r, constant.FlashDanger, msgGenericError)
		catalog.Page = params.Page
		catalog.Filters = filter
		handler.render(w, r, failure.GetCode(err), view.PageIndex, "Rooms", catalog)

		return
	}

	catalog.ListRoomsResponse = res

	handler.render(w, r, http.StatusOK, view.PageIndex, "Rooms", catalog)
}

// Book handles the catalog form and returns to the same page and filters.
func (handler *Handler) Book(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".web.Book")
	defer scope.End()

	back := catalogLink(r)

	if err := r.ParseForm(); err != nil {
		handler.fail(w, r, failure.BadRequest(err), back)

		return
	}

	req := bookingDto.BookRequest{}
	req.FromValues(r.PostForm)

	res, err := handler.bookings.Book(ctx, req, session.Username(ctx))
	if err != nil {
		scope.TraceError(err)
		handler.fail(w, r, err, back)

		return
	}

	scope.AddEvent("Room booked successfully")

	handler.redirect(w, r, back, constant.FlashSuccess, fmt.Sprintf("Room %d booked for %s!", res.RoomID, res.BookingDate))
}

// Cancel releases a room and goes back to where the user came from.
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".web.Cancel")
	defer scope.End()

	back := localReferer(r)

	roomID := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamRoomID))
	if roomID == nil {
		handler.fail(w, r, failure.RoomNotFoundError, back)

		return
	}

	if err := handler.bookings.Cancel(ctx, *roomID, session.Username(ctx)); err != nil {
		scope.TraceError(err)
		handler.fail(w, r, err, back)

		return
	}

	handler.redirect(w, r, back, constant.FlashInfo, fmt.Sprintf("Booking for Room %d canceled!", *roomID))
}

func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".web.Dashboard")
	defer scope.End()

	res, err := handler.dashboard.Compute(ctx, session.Username(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute dashboard")

		handler.sessions.Flash(w, r, constant.FlashDanger, msgGenericError)
		handler.render(w, r, failure.GetCode(err), view.PageDashboard, "Dashboard", res)

		return
	}

	handler.render(w, r, http.StatusOK, view.PageDashboard, "Dashboard", res)
}

func (handler *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".web.Profile")
	defer scope.End()

	res, err := handler.users.GetProfile(ctx, session.Username(ctx))
	if err != nil {
		scope.TraceError(err)

		handler.sessions.Flash(w, r, constant.FlashDanger, notice(err))
		handler.render(w, r, failure.GetCode(err), view.PageProfile, "Profile", userDto.ProfileResponse{Username: session.Username(ctx)})

		return
	}

	handler.render(w, r, http.StatusOK, view.PageProfile, "Profile", res)
}

func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".web.UpdateProfile")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.fail(w, r, failure.BadRequest(err), pathProfile)

		return
	}

	req := userDto.UpdateProfileRequest{}
	req.FromValues(r.PostForm)

	if err := handler.users.UpdateProfile(ctx, session.Username(ctx), req); err != nil {
		scope.TraceError(err)
		handler.fail(w, r, err, pathProfile)

		return
	}

	handler.redirect(w, r, pathProfile, constant.FlashSuccess, "Profile updated successfully!")
}

func (handler *Handler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	handler.view.Render(w, status, page, view.Page{
		Title:    title,
		Username: session.Username(r.Context()),
		Flashes:  handler.sessions.Flashes(w, r),
		Data:     data,
	})
}

func (handler *Handler) redirect(w http.ResponseWriter, r *http.Request, to, category, message string) {
	handler.sessions.Flash(w, r, category, message)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// fail turns an error into a danger notice on the target page.
func (handler *Handler) fail(w http.ResponseWriter, r *http.Request, err error, to string) {
	handler.redirect(w, r, to, constant.FlashDanger, notice(err))
}

// notice shows client errors as they are and hides server errors behind a generic message.
func notice(err error) string {
	var fail *failure.Failure
	if errors.As(err, &fail) && fail.Code < http.StatusInternalServerError {
		return fail.Message
	}

	log.Error().Err(err).Msg("request failed")

	return msgGenericError
}

// catalogLink rebuilds the catalog URL from the filters in the query string.
func catalogLink(r *http.Request) string {
	filter := roomDto.CatalogFilter{}
	filter.FromValues(r.URL.Query())

	params := gDto.QueryParams{}
	params.FromValues(r.URL.Query())

	return view.Catalog{
		ListRoomsResponse: roomDto.ListRoomsResponse{Page: params.Page, Filters: filter},
	}.PageLink(params.Page)
}

// localReferer returns the Referer as a same-site path, or the catalog when it points elsewhere.
func localReferer(r *http.Request) string {
	referer := r.Header.Get(constant.RequestHeaderReferer)
	if referer == constant.Empty {
		return pathIndex
	}

	parsed, err := url.Parse(referer)
	if err != nil {
		return pathIndex
	}

	if parsed.IsAbs() || parsed.Host != constant.Empty {
		if parsed.Host != r.Host || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return pathIndex
		}
	}

	if !strings.HasPrefix(parsed.Path, "/") || strings.HasPrefix(parsed.Path, "//") || strings.Contains(parsed.Path, `\`) {
		return pathIndex
	}

	local := url.URL{Path: parsed.Path, RawQuery: parsed.RawQuery}

	return local.String()
}
