package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	loginauth "vue-production/http-server/auth"
	deleteevent "vue-production/http-server/event/delete"
	getevent "vue-production/http-server/event/get"
	saveevent "vue-production/http-server/event/save"
	generate_excel "vue-production/http-server/generate-report/generate-excel"
	deleteorder "vue-production/http-server/order/delete"
	getorder "vue-production/http-server/order/get"
	saveorder "vue-production/http-server/order/save"
	updateorder "vue-production/http-server/order/update"
	getparts "vue-production/http-server/parts/get"
	getreport "vue-production/http-server/report/get"
	savereport "vue-production/http-server/report/save"
	"vue-production/internal/auth"
	mwauth "vue-production/internal/middleware/auth"
	"vue-production/internal/service/export"
	"vue-production/internal/storage/postgres"
)

func routes(log *slog.Logger, storage *postgres.Storage, checker auth.CredentialChecker, sessions *auth.SessionStore, exportService *export.ExportService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"}, // Разрешаем запросы с фронтенда
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Вход по форме, выход
	router.Post("/login", loginauth.Login(log, checker, sessions))
	router.Get("/logout", loginauth.Logout(log, sessions))

	// Всё под /api требует живой сессии
	apiRouter := chi.NewRouter()
	apiRouter.Use(mwauth.RequireSession(sessions))

	// Справочник деталей для формы плана
	apiRouter.Get("/parts", getparts.GetParts(log, storage))

	// Планы производства
	apiRouter.Get("/orders", getorder.GetOrders(log, storage))
	apiRouter.Get("/orders/{id}", getorder.GetOrder(log, storage))
	apiRouter.Post("/orders", saveorder.SaveOrder(log, storage))
	apiRouter.Put("/orders/{id}", updateorder.UpdateOrder(log, storage))
	apiRouter.Delete("/orders/{id}", deleteorder.DeleteOrder(log, storage))

	// Отчет по производству: страница и upsert
	apiRouter.Get("/orders/{id}/report", getreport.GetReportPage(log, storage))
	apiRouter.Post("/report", savereport.SaveReport(log, storage))

	// События смены
	apiRouter.Get("/orders/{id}/events", getevent.GetEvents(log, storage))
	apiRouter.Post("/events", saveevent.SaveEvent(log, storage))
	apiRouter.Delete("/events/{id}", deleteevent.DeleteEvent(log, storage))

	// Выгрузка в excel
	apiRouter.Get("/report/excel", generate_excel.GenerateReportExcel(log, exportService))

	router.Mount("/api", apiRouter)

	// Статика, vue
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("Папка фронтенда не найдена", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
