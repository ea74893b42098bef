package models

// Patch application is a shallow merge: a set field overwrites the record's
// value wholesale, an unset field leaves it untouched. Both storage backends
// share these merge rules.

// Apply merges the patch into the user record
func (p UserPatch) Apply(u *User) {
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.PhotoURL != nil {
		u.PhotoURL = *p.PhotoURL
	}
	if p.IsPremium != nil {
		u.IsPremium = *p.IsPremium
	}
	if p.SubscriptionEndDate != nil {
		u.SubscriptionEndDate = p.SubscriptionEndDate
	}
}

// Apply merges the patch into the bank record
func (p BankPatch) Apply(b *Bank) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Currency != nil {
		b.Currency = *p.Currency
	}
	if p.InitialBalance != nil {
		b.InitialBalance = *p.InitialBalance
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}

// Apply merges the patch into the bet record
func (p BetPatch) Apply(b *Bet) {
	if p.BankID != nil {
		b.BankID = *p.BankID
	}
	if p.Event != nil {
		b.Event = *p.Event
	}
	if p.Market != nil {
		b.Market = *p.Market
	}
	if p.Selection != nil {
		b.Selection = *p.Selection
	}
	if p.Odds != nil {
		b.Odds = *p.Odds
	}
	if p.Stake != nil {
		b.Stake = *p.Stake
	}
	if p.SportID != nil {
		b.SportID = p.SportID
	}
	if p.LeagueID != nil {
		b.LeagueID = p.LeagueID
	}
	if p.Bookmaker != nil {
		b.Bookmaker = p.Bookmaker
	}
	if p.Notes != nil {
		b.Notes = p.Notes
	}
	if p.Confidence != nil {
		b.Confidence = p.Confidence
	}
	if p.Tags != nil {
		b.Tags = *p.Tags
	}
	if p.EventDate != nil {
		b.EventDate = p.EventDate
	}
}

// Apply merges the patch into the tipster record
func (p TipsterPatch) Apply(t *Tipster) {
	if p.DisplayName != nil {
		t.DisplayName = *p.DisplayName
	}
	if p.Bio != nil {
		t.Bio = *p.Bio
	}
	if p.AvatarURL != nil {
		t.AvatarURL = *p.AvatarURL
	}
	if p.SubscriptionPrice != nil {
		t.SubscriptionPrice = p.SubscriptionPrice
	}
	if p.IsPublic != nil {
		t.IsPublic = *p.IsPublic
	}
}

// Apply merges the patch into the pick record
func (p PickPatch) Apply(k *Pick) {
	if p.Event != nil {
		k.Event = *p.Event
	}
	if p.Market != nil {
		k.Market = *p.Market
	}
	if p.Selection != nil {
		k.Selection = *p.Selection
	}
	if p.Odds != nil {
		k.Odds = *p.Odds
	}
	if p.SportID != nil {
		k.SportID = p.SportID
	}
	if p.LeagueID != nil {
		k.LeagueID = p.LeagueID
	}
	if p.Bookmaker != nil {
		k.Bookmaker = p.Bookmaker
	}
	if p.Analysis != nil {
		k.Analysis = *p.Analysis
	}
	if p.Confidence != nil {
		k.Confidence = *p.Confidence
	}
	if p.StakeUnits != nil {
		k.StakeUnits = *p.StakeUnits
	}
	if p.IsPremium != nil {
		k.IsPremium = *p.IsPremium
	}
	if p.EventDate != nil {
		k.EventDate = *p.EventDate
	}
}
