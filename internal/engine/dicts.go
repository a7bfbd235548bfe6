package engine

var (
	Surnames   = []string{"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴", "徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗"}
	GivenNames = []string{"子轩", "浩然", "宇航", "梓涵", "一诺", "欣怡", "诗涵", "雨桐", "俊杰", "思远", "若曦", "天佑", "明轩", "可馨", "博文"}

	// 닉네임 조합용 접두/접미
	NickPrefixes = []string{"Shadow", "Iron", "Storm", "Frost", "Blaze", "Silent", "Crimson", "Lucky", "Wild", "Ancient"}
	NickSuffixes = []string{"Blade", "Wolf", "Hunter", "Mage", "Knight", "Archer", "Dragon", "Ghost", "Fox", "King"}

	Channels = []string{"appstore", "googleplay", "huawei", "xiaomi", "oppo", "vivo", "taptap", "official"}
	Devices  = []string{"iPhone14,2", "iPhone15,3", "SM-G9910", "M2012K11AC", "PEGM00", "V2049A", "ELS-AN00"}
)

// 설명/제목 생성용 단어 사전 (영 -> 중)
var EngToChnMap = map[string]string{
	// 명사
	"Sword": "剑", "Shield": "盾", "Armor": "铠甲", "Potion": "药水",
	"Dragon": "龙", "Castle": "城堡", "Dungeon": "地下城", "Guild": "公会",
	"Quest": "任务", "Reward": "奖励", "Boss": "首领", "Hero": "英雄",
	"Pet": "宠物", "Mount": "坐骑", "Skill": "技能", "Rune": "符文",
	"Gem": "宝石", "Gold": "金币", "Diamond": "钻石", "Chest": "宝箱",
	"Arena": "竞技场", "Battle": "战斗", "Raid": "团本", "Event": "活动",
	"Shop": "商店", "Mail": "邮件", "Friend": "好友", "Team": "队伍",

	// 형용사
	"Legendary": "传说", "Epic": "史诗", "Rare": "稀有", "Common": "普通",
	"Ancient": "远古", "Holy": "神圣", "Dark": "黑暗", "Golden": "黄金",
	"Frozen": "冰封", "Burning": "燃烧", "Hidden": "隐藏", "Daily": "每日",

	// 동사
	"Upgrade": "升级", "Enhance": "强化", "Summon": "召唤", "Recharge": "充值",
	"Claim": "领取", "Defeat": "击败", "Explore": "探索", "Unlock": "解锁",
}
