package handlers

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// Localized wire messages, kept verbatim from the storefront contract.
const (
	msgOrderCreated     = "Заказ успешно создан"
	msgMissingFields    = "Не все обязательные поля заполнены"
	msgUserIDRequired   = "user_id обязателен"
	msgMethodNotAllowed = "Method not allowed"
	serverErrorPrefix   = "Ошибка сервера"
)

// corsPreflight is the OPTIONS response; allowMethods differs per handler.
func corsPreflight(allowMethods string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": allowMethods,
			"Access-Control-Allow-Headers": "Content-Type",
			"Access-Control-Max-Age":       "86400",
		},
		Body:            "",
		IsBase64Encoded: false,
	}
}

func jsonResponse(status int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		body = []byte(`{"error": "` + serverErrorPrefix + `"}`)
		status = 500
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body:            string(body),
		IsBase64Encoded: false,
	}
}

func errorResponse(status int, message string) events.APIGatewayProxyResponse {
	return jsonResponse(status, map[string]string{"error": message})
}

func serverError(err error) events.APIGatewayProxyResponse {
	return errorResponse(500, serverErrorPrefix+": "+err.Error())
}

func methodNotAllowed() events.APIGatewayProxyResponse {
	return errorResponse(405, msgMethodNotAllowed)
}
