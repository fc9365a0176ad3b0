package greeting

// Message is the fixed greeting returned for every GET / request.
// The value is part of the service contract and must not vary per request.
const Message = "Hello World from EKS!"

// Service defines the single use case this application exposes.
type Service interface {
	// Greet returns the greeting body for the root route.
	Greet() string
}

type greetingService struct{}

// NewService returns the production Service implementation.
func NewService() Service {
	return &greetingService{}
}

func (s *greetingService) Greet() string {
	return Message
}
