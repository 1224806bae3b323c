package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/MoradaViva/api-posvenda/internal/empreendimento"
	"github.com/MoradaViva/api-posvenda/internal/feedback"
	"github.com/MoradaViva/api-posvenda/internal/instalador"
	"github.com/MoradaViva/api-posvenda/internal/item"
	"github.com/MoradaViva/api-posvenda/internal/morador"
	"github.com/MoradaViva/api-posvenda/internal/notificacao"
	"github.com/MoradaViva/api-posvenda/internal/predio"
	"github.com/MoradaViva/api-posvenda/internal/saude"
	"github.com/MoradaViva/api-posvenda/internal/unidade"
	db_utils "github.com/MoradaViva/api-posvenda/internal/utils/db"
	"github.com/MoradaViva/api-posvenda/internal/visita"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	db, err := db_utils.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := db.AutoMigrate(
		&empreendimento.Empreendimento{},
		&predio.Predio{},
		&unidade.Unidade{},
		&item.Item{},
		&morador.Morador{},
		&instalador.Instalador{},
		&feedback.Feedback{},
		&visita.Visita{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Serviços
	notificador := notificacao.NewWebhookNotificador()
	feedbackService := feedback.NewService(db, notificador)
	saudeCache := saude.NewCache(
		os.Getenv("REDIS_HOST"),
		os.Getenv("REDIS_PASSWORD"),
		redisDB(),
	)

	// Handlers
	empreendimentoHandler := empreendimento.NewHandler(db)
	predioHandler := predio.NewHandler(db)
	unidadeHandler := unidade.NewHandler(db)
	itemHandler := item.NewHandler(db)
	moradorHandler := morador.NewHandler(db)
	instaladorHandler := instalador.NewHandler(db)
	feedbackHandler := feedback.NewHandler(db, feedbackService)
	saudeHandler := saude.NewHandler(saude.NewCalculator(db), saudeCache)

	// Router
	r := mux.NewRouter()

	// Rotas de empreendimentos
	r.HandleFunc("/empreendimentos", empreendimentoHandler.CriarEmpreendimento).Methods("POST")
	r.HandleFunc("/empreendimentos", empreendimentoHandler.ListarEmpreendimentos).Methods("GET")
	r.HandleFunc("/empreendimentos/{id}", empreendimentoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/empreendimentos/{id}/limite-risco", empreendimentoHandler.AtualizarLimiteRisco).Methods("PUT")
	r.HandleFunc("/empreendimentos/{id}/saude", saudeHandler.BuscarSaude).Methods("GET")
	r.HandleFunc("/empreendimentos/{id}/predios", predioHandler.CriarPredio).Methods("POST")
	r.HandleFunc("/empreendimentos/{id}/predios", predioHandler.ListarPorEmpreendimento).Methods("GET")

	// Rotas da árvore de unidades e itens
	r.HandleFunc("/predios/{id}/unidades", unidadeHandler.CriarUnidade).Methods("POST")
	r.HandleFunc("/predios/{id}/unidades", unidadeHandler.ListarPorPredio).Methods("GET")
	r.HandleFunc("/unidades/{id}/itens", itemHandler.CriarItem).Methods("POST")
	r.HandleFunc("/unidades/{id}/itens", itemHandler.ListarPorUnidade).Methods("GET")

	// Rotas de moradores
	r.HandleFunc("/moradores", moradorHandler.CriarMorador).Methods("POST")
	r.HandleFunc("/moradores", moradorHandler.ListarMoradores).Methods("GET")
	r.HandleFunc("/moradores/{id}", moradorHandler.BuscarPorID).Methods("GET")

	// Rotas de instaladores
	r.HandleFunc("/instaladores", instaladorHandler.CriarInstalador).Methods("POST")
	r.HandleFunc("/instaladores", instaladorHandler.ListarInstaladores).Methods("GET")
	r.HandleFunc("/instaladores/{id}", instaladorHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/instaladores/{id}", instaladorHandler.DeletarInstalador).Methods("DELETE")

	// Rotas de feedbacks
	r.HandleFunc("/feedbacks", feedbackHandler.CriarFeedback).Methods("POST")
	r.HandleFunc("/feedbacks/{id}", feedbackHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/feedbacks/{id}/status", feedbackHandler.AtualizarStatus).Methods("PATCH")
	r.HandleFunc("/itens/{id}/feedbacks", feedbackHandler.ListarPorItem).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Servidor rodando em http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func redisDB() int {
	n, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		return 0
	}
	return n
}
