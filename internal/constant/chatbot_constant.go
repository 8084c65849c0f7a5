package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleModel     = "model"
)

// AssistantPersonaPromptV1 is prepended to every reply generation call.
const AssistantPersonaPromptV1 = `Eres MAGIARS, un asistente virtual de atención al cliente para una plataforma de gestión de cuentas de redes sociales.

REGLAS:
1. Responde siempre en español, con tono cercano y profesional.
2. Responde en 2-4 frases, sin listas largas ni tecnicismos innecesarios.
3. Solo respondes temas de la plataforma: publicaciones, integraciones, cuentas conectadas, facturación y soporte.
4. Si el usuario pide hablar con una persona, indícale que puede escribir "humano" para ser atendido por un asesor.
5. Nunca inventes datos de la cuenta del usuario.`

// ClassifyPromptV1 constrains the model to one label of CategoryLabels.
const ClassifyPromptV1 = `Clasifica la siguiente conversación de soporte en UNA sola de estas categorías:

Soporte Técnico, Ventas, Facturación, Quejas y Reclamos, Cuenta, Información General, Otro

Responde ÚNICAMENTE con el nombre exacto de la categoría, sin puntuación ni texto adicional. Si ninguna aplica, responde Otro.`

// TitlePromptV1 asks for a short conversation title from the first message.
const TitlePromptV1 = `Genera un título corto (máximo 40 caracteres) que resuma el siguiente mensaje de un usuario. Responde únicamente con el título, sin comillas ni punto final.`

const (
	OutOfHoursReply = "En este momento estamos fuera de nuestro horario de atención. Déjanos tu mensaje y te responderemos tan pronto estemos disponibles. 🕐"

	RatingPromptReply = "¡Gracias por contactarnos! Antes de irte, ¿podrías calificar tu experiencia de 1 a 5 estrellas? ⭐"

	EscalationReply = "Entendido, te estoy conectando con un asesor humano. En breve una persona de nuestro equipo continuará la conversación. 👤"

	FallbackReply = "Lo siento, en este momento no puedo generar una respuesta. ¿Puedes intentarlo de nuevo en unos minutos?"

	UnconfiguredReply = "¡Hola! Soy el asistente de MAGIARS 🤖. ¿En qué puedo ayudarte?"
)

const (
	// DefaultCategory is what the classifier prompt falls back to.
	DefaultCategory = "Otro"
	// FallbackCategory is the local fallback when the model is unavailable.
	FallbackCategory = "General"

	MaxTitleLength = 40
)

// CategoryLabels is the closed set the classifier may return.
var CategoryLabels = []string{
	"Soporte Técnico",
	"Ventas",
	"Facturación",
	"Quejas y Reclamos",
	"Cuenta",
	"Información General",
	"Otro",
}

// ClosingKeywords trigger the rating prompt. Checked before EscalationKeywords.
var ClosingKeywords = []string{
	"gracias",
	"adios",
	"adiós",
	"hasta luego",
	"chao",
	"nos vemos",
	"eso es todo",
	"bye",
}

// EscalationKeywords trigger the human handoff.
var EscalationKeywords = []string{
	"humano",
	"asesor",
	"persona",
	"agente",
	"representante",
	"operador",
	"hablar con alguien",
}
