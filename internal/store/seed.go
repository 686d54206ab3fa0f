package store

const vpnTooltip = "Προτείνουμε VPN για όλους τους παροχους, το οποίο να ανοίγετε (προτείνουμε Νορβηγία) πριν ανοίξετε το καζίνο."

// DefaultCasinos returns the launch leaderboard used to seed an empty
// backing store and as the volatile fallback dataset.
func DefaultCasinos() []Casino {
	return []Casino{
		{
			ID: 1, Rank: 1, RankClass: "",
			Name: "Casino Stars", Logo: "/Assets/casinostars.png",
			Rating: 9.9, Stars: 5, URL: "#",
			IsNew: true, HasVPN: true, VPNTooltip: vpnTooltip,
			Bonus: Bonus{
				Percentage: "100%", MaxAmount: "500$", PromoCode: "None",
				Wager: "30x", FreeSpins: "No", Verification: "Χωρις",
			},
			Features:   Features{QuickWithdrawals: true, WithdrawalText: "Quick Withdrawls"},
			ButtonText: "Claim Bonus",
		},
		{
			ID: 2, Rank: 2, RankClass: "two",
			Name: "Nine Casino", Logo: "/Assets/ninecasino.svg",
			Rating: 9.9, Stars: 5, URL: "#",
			IsNew: true, HasVPN: true, VPNTooltip: vpnTooltip,
			Bonus: Bonus{
				Percentage: "100%", MaxAmount: "500$", PromoCode: "None",
				Wager: "30x", FreeSpins: "No", Verification: "Χωρις",
			},
			Features:   Features{QuickWithdrawals: true, WithdrawalText: "Quick Withdrawls"},
			ButtonText: "Claim Bonus",
		},
		{
			ID: 3, Rank: 3, RankClass: "three",
			Name: "Wintopia", Logo: "/Assets/wintopia.svg",
			Rating: 9.9, Stars: 5, URL: "#",
			IsNew: true, HasVPN: true, VPNTooltip: vpnTooltip,
			Bonus: Bonus{
				Percentage: "100%", MaxAmount: "500$", PromoCode: "None",
				Wager: "30x", FreeSpins: "No", Verification: "Χωρις",
			},
			Features:   Features{QuickWithdrawals: true, WithdrawalText: "Quick Withdrawls"},
			ButtonText: "Claim Bonus",
		},
		{
			ID: 4, Rank: 4, RankClass: "default",
			Name: "Bet Riot", Logo: "/Assets/betriot.svg",
			Rating: 9.9, Stars: 5, URL: "#",
			IsNew: true, HasVPN: true, VPNTooltip: vpnTooltip,
			Bonus: Bonus{
				Percentage: "100%", MaxAmount: "500$", PromoCode: "None",
				Wager: "30x", FreeSpins: "No", Verification: "Χωρις",
			},
			Features:   Features{QuickWithdrawals: true, WithdrawalText: "Quick Withdrawls"},
			ButtonText: "Claim Bonus",
		},
		{
			ID: 5, Rank: 5, RankClass: "default",
			Name: "Deposit Win", Logo: "/Assets/Depositwin.svg",
			Rating: 9.8, Stars: 5, URL: "#",
			IsNew: true, HasVPN: true, VPNTooltip: vpnTooltip,
			Bonus: Bonus{
				Percentage: "150%", MaxAmount: "750$", PromoCode: "SLOTS150",
				Wager: "35x", FreeSpins: "100", Verification: "Απαιτειται",
			},
			Features:   Features{QuickWithdrawals: true, WithdrawalText: "Fast Withdrawls"},
			ButtonText: "Get Bonus",
		},
		{
			ID: 6, Rank: 6, RankClass: "default",
			Name: "Billy Casino", Logo: "/Assets/Billy.png",
			Rating: 9.7, Stars: 4, URL: "#",
			IsNew: false, HasVPN: true, VPNTooltip: vpnTooltip,
			Bonus: Bonus{
				Percentage: "200%", MaxAmount: "1000$", PromoCode: "BILLY200",
				Wager: "40x", FreeSpins: "200", Verification: "Χωρις",
			},
			Features:   Features{QuickWithdrawals: false, WithdrawalText: "Standard Withdrawls"},
			ButtonText: "Play Now",
		},
	}
}

// DefaultBillboards returns the launch rotation for the promo billboard.
func DefaultBillboards() []Billboard {
	return []Billboard{
		{
			ID:              1,
			Title:           "Exclusive Welcome Bonus",
			Subtitle:        "Get up to €500 + 200 Free Spins",
			Description:     "Join now and claim your exclusive welcome package with amazing bonuses and free spins!",
			ButtonText:      "Claim Now",
			ButtonURL:       "#",
			BackgroundImage: "/Assets/place.svg",
			IsActive:        true,
			Order:           1,
		},
		{
			ID:              2,
			Title:           "VIP Casino Experience",
			Subtitle:        "Premium Gaming at Its Finest",
			Description:     "Experience luxury gaming with our VIP program, exclusive games, and personal account managers.",
			ButtonText:      "Learn More",
			ButtonURL:       "#",
			BackgroundImage: "/Assets/place.svg",
			IsActive:        true,
			Order:           2,
		},
		{
			ID:              3,
			Title:           "Weekly Tournaments",
			Subtitle:        "Compete for €10,000 Prize Pool",
			Description:     "Join our weekly casino tournaments and compete against players worldwide for massive prizes!",
			ButtonText:      "Join Tournament",
			ButtonURL:       "#",
			BackgroundImage: "/Assets/place.svg",
			IsActive:        true,
			Order:           3,
		},
	}
}
