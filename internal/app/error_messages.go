// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP handlers.
//
// Msg* constants are written verbatim into {"message": ...} and
// {"error": ...} bodies, so changing one changes the public API.
package app

const (
	// MsgInternalServerError is the only error text a client sees for
	// failures it cannot resolve.
	MsgInternalServerError = "internal server error"

	MsgUserRegistered  = "User registered successfully"
	MsgLoginSuccessful = "Login successful"
	MsgPasswordUpdated = "Password updated successfully"
	MsgUserDeleted     = "User deleted successfully"

	// MsgResetEmailSent is returned even when the mail could not be delivered;
	// delivery failures are only logged.
	MsgResetEmailSent = "Password reset email sent"
	MsgPasswordReset  = "Password has been reset successfully"

	MsgProgressStarted   = "Recipe progress started"
	MsgIngredientUpdated = "Ingredient updated"
	MsgRecipeCompleted   = "Recipe marked as completed"
)
