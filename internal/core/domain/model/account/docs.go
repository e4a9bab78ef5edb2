// Package account holds the Account aggregate covering registration,
// email verification, login credentials and password reset codes.
//
// Accounts start unverified with a pending verification code; redeeming
// the code flips them to verified and only verified accounts can sign in.
// One-time codes are single-slot per account, so issuing a new code of
// either purpose invalidates the previous one.
package account
