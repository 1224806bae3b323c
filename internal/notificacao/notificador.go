// Package notificacao envia avisos de mudança de status ao morador.
// O envio é sempre best-effort: uma falha é registrada em log e nunca
// bloqueia nem reverte a transição já persistida.
package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// Notificador é a capacidade injetada no motor de transições; em testes é
// substituído por um mock.
type Notificador interface {
	Enviar(nome, email, status string, feedbackID uint, info string) bool
}

// WebhookNotificador publica o aviso em um webhook HTTP (integração de
// e-mail/mensageria fica do outro lado do webhook).
type WebhookNotificador struct {
	URL    string
	Client *http.Client
}

func NewWebhookNotificador() *WebhookNotificador {
	return &WebhookNotificador{
		URL:    os.Getenv("NOTIFICACAO_WEBHOOK_URL"),
		Client: http.DefaultClient,
	}
}

func (n *WebhookNotificador) Enviar(nome, email, status string, feedbackID uint, info string) bool {
	if n.URL == "" {
		log.Printf("NOTIFICACAO_WEBHOOK_URL não configurada; notificação do feedback %d descartada", feedbackID)
		return false
	}

	payload := map[string]interface{}{
		"morador":    nome,
		"email":      email,
		"status":     status,
		"feedbackId": feedbackID,
	}
	if info != "" {
		payload["info"] = info
	}
	body, _ := json.Marshal(payload)

	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook de notificação: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("Webhook de notificação respondeu %d para o feedback %d", resp.StatusCode, feedbackID)
		return false
	}
	return true
}
