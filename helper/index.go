package helper

import (
	"log"

	"restro_pos/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GetInfoAccountFromToken pulls the cashier identity out of the parsed JWT
// the Protected middleware stashed in Locals. Guests get a zero claim.
func GetInfoAccountFromToken(c *fiber.Ctx) model.TokenClaim {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		log.Println("Invalid token type in Locals")
		return model.TokenClaim{}
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		log.Println("Invalid claims type in Locals")
		return model.TokenClaim{}
	}

	accountInfo := model.TokenClaim{}
	if aid, ok := claims["accountId"].(float64); ok {
		accountInfo.AccountId = uint(aid)
	}
	if username, ok := claims["username"].(string); ok {
		accountInfo.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		accountInfo.Role = role
	}
	if bid, ok := claims["branchId"].(float64); ok {
		branchId := uint(bid)
		accountInfo.BranchId = &branchId
	}

	return accountInfo
}
