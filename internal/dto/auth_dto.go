package dto

// RegisterForm 注册表单
type RegisterForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginForm 登录表单
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// AuthPageData 登录/注册页视图数据
type AuthPageData struct {
	Error string
}
