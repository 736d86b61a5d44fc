package httptransport

import (
	"net/http"

	"github.com/gorilla/mux"

	"messagedesk/internal/config"
	"messagedesk/internal/httpx"
	"messagedesk/internal/service"
	"messagedesk/internal/storage/providers"
)

func Router(allProviders *providers.Providers, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	authService := service.NewAuthService(allProviders.AuthProvider, cfg.JWT.Secret)
	templateService := service.NewTemplateService(
		allProviders.TemplateProvider,
		allProviders.ContactProvider,
		allProviders.AuthProvider,
		service.CompanyProfile{
			Name:             cfg.Company.Name,
			DefaultAgentName: cfg.Company.DefaultAgentName,
		},
	)
	contactService := service.NewContactService(allProviders.ContactProvider)

	authHandler := NewAuthHandlers(authService)
	templateHandler := NewTemplateHandlers(templateService)
	contactHandler := NewContactHandlers(contactService)
	editorHandler := NewEditorHandlers()

	api := router.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	templates := api.PathPrefix("/templates").Subrouter()
	templates.Use(httpx.Protected(cfg.JWT.Secret))
	templates.HandleFunc("", templateHandler.GetAllTemplates).Methods(http.MethodGet)
	templates.HandleFunc("", templateHandler.CreateTemplate).Methods(http.MethodPost)
	templates.HandleFunc("/validate", templateHandler.ValidateTemplate).Methods(http.MethodPost)
	templates.HandleFunc("/preview", templateHandler.PreviewBody).Methods(http.MethodPost)
	templates.HandleFunc("/{id}", templateHandler.GetTemplate).Methods(http.MethodGet)
	templates.HandleFunc("/{id}", templateHandler.UpdateTemplate).Methods(http.MethodPut)
	templates.HandleFunc("/{id}/activate", templateHandler.ActivateTemplate).Methods(http.MethodPost)
	templates.HandleFunc("/{id}/archive", templateHandler.ArchiveTemplate).Methods(http.MethodPost)
	templates.HandleFunc("/{id}/preview", templateHandler.PreviewTemplate).Methods(http.MethodPost)

	contacts := api.PathPrefix("/contacts").Subrouter()
	contacts.Use(httpx.Protected(cfg.JWT.Secret))
	contacts.HandleFunc("", contactHandler.GetAllContacts).Methods(http.MethodGet)
	contacts.HandleFunc("", contactHandler.CreateContact).Methods(http.MethodPost)
	contacts.HandleFunc("/{id}", contactHandler.GetContact).Methods(http.MethodGet)

	editor := api.PathPrefix("/editor").Subrouter()
	editor.Use(httpx.Protected(cfg.JWT.Secret))
	editor.HandleFunc("/insert-placeholder", editorHandler.InsertPlaceholder).Methods(http.MethodPost)
	editor.HandleFunc("/apply-markup", editorHandler.ApplyMarkup).Methods(http.MethodPost)

	return router
}
