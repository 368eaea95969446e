// Package login implements the client side of the library login flow on top
// of securestore.
//
// Service.Login checks the brute-force Guard, validates and sanitises the
// credentials, calls an Authenticator and, on success, persists the token and
// a minimal user profile:
//
//	svc := login.NewService(store, api, login.WithLogger(log))
//	user, err := svc.Login(ctx, login.Credentials{Email: email, Password: pw})
//	var locked *login.LockoutError
//	switch {
//	case errors.As(err, &locked):
//		fmt.Printf("retry in %d minute(s)\n", locked.Minutes())
//	case validator.IsValidationError(err):
//		// show field errors
//	}
//
// The Guard locks further attempts for five minutes after five consecutive
// failures. The lock survives restarts because it is stored under the
// "loginLockout" key; the failure counter itself lives in memory.
package login
