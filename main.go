package main

import "github.com/spendbin/backend/cmd"

//	@title						spendbin
//	@description				Daily budgets, expenses and monthly expense buckets.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token, formatted as "Bearer <token>"

func main() {
	cmd.Execute()
}
