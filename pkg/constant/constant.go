package constant

const (
	DefaultTokenType = "bearer"

	// PrincipalKey is the fiber.Ctx locals key holding the resolved user.
	PrincipalKey = "principal"
)
