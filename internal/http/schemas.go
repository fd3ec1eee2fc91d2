package http

import (
	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

const payableSchemaJSON = `{
	"type": "object",
	"required": ["description", "amount", "dueDate", "paymentMethod", "category", "supplierId"],
	"properties": {
		"description": {"type": "string", "minLength": 1},
		"amount": {"type": "number", "minimum": 0},
		"dueDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"paidDate": {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"status": {"type": "string", "enum": ["PENDING", "PAID", "CANCELED"]},
		"paymentMethod": {"type": "string", "enum": ["CASH", "CREDIT_CARD", "DEBIT_CARD", "PIX", "BOLETO", "TRANSFER"]},
		"category": {"type": "string", "minLength": 1},
		"notes": {"type": "string"},
		"receiptUrl": {"type": "string"},
		"supplierId": {"type": "integer", "minimum": 1},
		"bankAccountId": {"type": ["integer", "null"]},
		"creditCardId": {"type": ["integer", "null"]}
	}
}`

const receivableSchemaJSON = `{
	"type": "object",
	"required": ["description", "amount", "dueDate", "receiptMethod", "clientId"],
	"properties": {
		"description": {"type": "string", "minLength": 1},
		"amount": {"type": "number", "minimum": 0},
		"dueDate": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"receivedDate": {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"status": {"type": "string", "enum": ["PENDING", "RECEIVED", "OVERDUE", "CANCELED"]},
		"receiptMethod": {"type": "string", "enum": ["CASH", "CREDIT_CARD", "DEBIT_CARD", "PIX", "BOLETO", "TRANSFER"]},
		"notes": {"type": "string"},
		"clientId": {"type": "integer", "minimum": 1},
		"bankAccountId": {"type": ["integer", "null"]}
	}
}`

func mustCompileSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(err)
	}
	return schema
}

// validateBody checks the raw request body against a schema; on failure
// it writes the response and returns false.
func (s *Server) validateBody(c *gin.Context, schema *gojsonschema.Schema, body []byte) bool {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid json"})
		return false
	}
	if !res.Valid() {
		details := []string{}
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		c.JSON(422, gin.H{"error": "schema_invalid", "details": details})
		return false
	}
	return true
}
