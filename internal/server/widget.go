package server

// widgetHTML — страница веб-чата, встраиваемая на сайт салона.
// Идентификатор сессии живёт в localStorage, чтобы история не терялась
// между перезагрузками страницы.
const widgetHTML = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Чат с салоном красоты</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 600px;
            margin: 50px auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .chat-container {
            background: white;
            border-radius: 10px;
            padding: 20px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .chat-messages {
            height: 400px;
            overflow-y: auto;
            border: 1px solid #ddd;
            padding: 15px;
            margin-bottom: 15px;
            border-radius: 5px;
            background-color: #fafafa;
        }
        .message {
            margin-bottom: 15px;
            padding: 10px;
            border-radius: 10px;
            max-width: 80%;
        }
        .user-message {
            background-color: #007bff;
            color: white;
            margin-left: auto;
            text-align: right;
        }
        .bot-message {
            background-color: #e9ecef;
            color: #333;
        }
        .input-container {
            display: flex;
            gap: 10px;
        }
        #messageInput {
            flex: 1;
            padding: 10px;
            border: 1px solid #ddd;
            border-radius: 5px;
        }
        #sendButton {
            padding: 10px 20px;
            background-color: #007bff;
            color: white;
            border: none;
            border-radius: 5px;
            cursor: pointer;
        }
        #sendButton:hover {
            background-color: #0056b3;
        }
    </style>
</head>
<body>
    <div class="chat-container">
        <h2>💄 Чат с салоном красоты ArtBeauty</h2>
        <div class="chat-messages" id="chatMessages">
            <div class="message bot-message">
                Здравствуйте! Я помогу вам записаться на услуги нашего салона или отвечу на ваши вопросы. Чем могу помочь?
            </div>
        </div>
        <div class="input-container">
            <input type="text" id="messageInput" placeholder="Введите ваше сообщение..." />
            <button id="sendButton">Отправить</button>
        </div>
    </div>

    <script>
        const chatMessages = document.getElementById('chatMessages');
        const messageInput = document.getElementById('messageInput');
        const sendButton = document.getElementById('sendButton');

        function addMessage(text, isUser = false) {
            const messageDiv = document.createElement('div');
            messageDiv.className = 'message ' + (isUser ? 'user-message' : 'bot-message');
            messageDiv.textContent = text;
            chatMessages.appendChild(messageDiv);
            chatMessages.scrollTop = chatMessages.scrollHeight;
        }

        let sessionId = localStorage.getItem('webchat_session_id');
        if (!sessionId) {
            sessionId = 'web_' + Date.now();
            localStorage.setItem('webchat_session_id', sessionId);
        }

        async function sendMessage() {
            const message = messageInput.value.trim();
            if (!message) return;

            addMessage(message, true);
            messageInput.value = '';
            sendButton.disabled = true;
            sendButton.textContent = 'Отправляется...';

            try {
                const response = await fetch('/webchat', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ message: message, user_id: sessionId })
                });

                const data = await response.json();
                if (data.answer) {
                    addMessage(data.answer);
                } else {
                    addMessage('Извините, произошла ошибка. Попробуйте позже.');
                }
            } catch (error) {
                addMessage('Извините, произошла ошибка соединения. Попробуйте позже.');
            } finally {
                sendButton.disabled = false;
                sendButton.textContent = 'Отправить';
                messageInput.focus();
            }
        }

        sendButton.addEventListener('click', sendMessage);
        messageInput.addEventListener('keypress', (e) => {
            if (e.key === 'Enter') {
                sendMessage();
            }
        });

        messageInput.focus();
    </script>
</body>
</html>
`
