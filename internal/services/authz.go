package services

import "github.com/craftbridge/platform_be_craftbridge/internal/models"

// Authorization predicates, kept in one place instead of per-handler checks.

func canManageProject(actor *models.User, p *models.Project) bool {
	return actor != nil && actor.ID == p.CommunityID
}

func canDecideBid(actor *models.User, p *models.Project) bool {
	return canManageProject(actor, p)
}

// canViewBids: the owner sees their project's bids, and engineer accounts may
// browse them too.
func canViewBids(actor *models.User, p *models.Project) bool {
	if actor == nil {
		return false
	}
	return actor.ID == p.CommunityID || actor.Role == models.RoleEngineer
}

func isCommunity(actor *models.User) bool {
	return actor != nil && actor.Role == models.RoleCommunity
}

func isEngineer(actor *models.User) bool {
	return actor != nil && actor.Role == models.RoleEngineer
}
