package handlers

// AppHandlers holds all handlers of the application.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	ThreadHandler *ThreadHandler
	UserHandler   *UserHandler
}
