package constants

// 菜谱图片
const (
	RecipeImagePathPrefix = "uploads/recipe/" // 对象存储中的路径前缀，文件名为 uuid + 原扩展名
	RecipeImageMaxSize    = 10 << 20          // 上传图片的大小上限（10 MiB）
)
